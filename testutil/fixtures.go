// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"strconv"
	"strings"
)

const recordSep = "~~~~~~~~"

// Upstream routes used by the fake
const (
	TrainsRoute      = "/rail/getTrains.aspx"
	RouteRoute       = "/data.aspx"
	StationLiveRoute = "/station-live/"
	PNRRoute         = "/pnr-status/"
)

// TrainListPayload builds a between-stations listing. Each train is given as
// train number and running-days string.
func TrainListPayload(trains ...[2]string) string {
	var b strings.Builder
	b.WriteString("header")
	for _, tr := range trains {
		b.WriteString(recordSep)
		b.WriteString("~^" + strings.Join([]string{
			tr[0], "MUMBAI RAJDHANI", "MUMBAI CENTRAL", "MMCT", "NEW DELHI", "NDLS",
			"MUMBAI CENTRAL", "MMCT", "NEW DELHI", "NDLS", "17.00", "08.32", "15.32", tr[1],
		}, "~"))
	}
	b.WriteString(recordSep)
	return b.String()
}

// TrainDetailPayload builds a single-train lookup for trainNo carrying trainID
func TrainDetailPayload(trainNo, trainID string) string {
	head := []string{
		"^" + trainNo, "MUMBAI RAJDHANI", "MUMBAI CENTRAL", "MMCT", "NEW DELHI", "NDLS",
		"a", "b", "c", "d", "17.00", "08.32", "15.32", "YYYYYYY", "e",
	}
	extra := make([]string, 20)
	for i := range extra {
		extra[i] = "x" + strconv.Itoa(i)
	}
	extra[11] = "RAJ"
	extra[12] = trainID
	extra[18] = "1386"
	extra[19] = "90"
	return strings.Join(head, "~") + recordSep + strings.Join(extra, "~")
}

// RoutePayload is a three-stop TRAINROUTE answer
const RoutePayload = "~^1~MMCT~MUMBAI CENTRAL~First~17:00~h~0~1~p~WR" +
	"~^2~BVI~BORIVALI~17:22~17:24~2~30~1~p~WR" +
	"~^3~NDLS~NEW DELHI~08:32~Last~h~1386~2~p~NR"

// LivePage is a station-live page with two trains
const LivePage = `<html><body><table>
<tr><td><div class="name">12951 MUMBAI RAJDHANI</div><div>MUMBAI CENTRAL → NEW DELHI</div></td><td>08:32 On time</td></tr>
<tr><td><div class="name">12953 AUGUST KRANTI</div><div>MUMBAI CENTRAL → H NIZAMUDDIN</div></td><td>10:55 Late 12 min</td></tr>
</table></body></html>`

// PNRPage embeds its status in a script assignment
const PNRPage = `<html><head><script>
var data = {"Pnr":"1234567890","TrainNo":"12951","PassengerStatus":[{"Number":1,"CurrentStatus":"CNF"}]};
</script></head><body></body></html>`
