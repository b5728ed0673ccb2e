package aldicrawler

import (
	"fmt"
	"time"
)

const (
	scrollHeightJS   = `() => document.body.scrollHeight`
	scrollToBottomJS = `() => window.scrollTo(0, document.body.scrollHeight)`
)

// stabilizeLazyLoad scrolls to the bottom of the page until its height
// stops growing, which is the signal that lazy-loaded tiles have finished
// appending.
func (app *Crawler) stabilizeLazyLoad() error {
	readHeight := func() (int64, error) {
		v, err := app.evaluate(scrollHeightJS)
		if err != nil {
			return 0, err
		}
		return toInt64(v)
	}
	scroll := func() error {
		_, err := app.evaluate(scrollToBottomJS)
		return err
	}
	rounds, settled, err := settleHeight(readHeight, scroll, app.engine.ScrollDelay, app.engine.MaxScrollRounds)
	if err != nil {
		return err
	}
	if !settled {
		app.Logger.Warn("Page height did not stabilize after %d scrolls, extracting anyway", rounds)
	}
	return nil
}

// settleHeight runs the scroll/measure loop until the reported height
// repeats, or maxRounds scrolls have happened. It returns the number of
// scrolls performed and whether the height settled.
func settleHeight(readHeight func() (int64, error), scroll func() error, delay time.Duration, maxRounds int) (int, bool, error) {
	lastHeight, err := readHeight()
	if err != nil {
		return 0, false, err
	}
	rounds := 0
	for rounds < maxRounds {
		if err := scroll(); err != nil {
			return rounds, false, err
		}
		rounds++
		time.Sleep(delay)
		newHeight, err := readHeight()
		if err != nil {
			return rounds, false, err
		}
		if newHeight == lastHeight {
			return rounds, true, nil
		}
		lastHeight = newHeight
	}
	return rounds, false, nil
}

// toInt64 normalizes the numeric shapes the two adapters hand back from
// JS evaluation.
func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected height type: %T", v)
	}
}
