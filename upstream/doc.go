// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package upstream fetches raw pages from erail.in and the PNR status site.

	client := upstream.NewClient(cfg)
	raw, err := client.Train(ctx, "12951")

Bodies come back as strings and are handed to package decode. Non-2xx
answers are *StatusError; transport failures and timeouts are wrapped
errors. Each request carries the configured User-Agent, or one picked
from a small pool of desktop browsers.
*/
package upstream
