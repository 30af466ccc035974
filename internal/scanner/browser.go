package scanner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
)

// snapshotScript serializes the element tree in-page, mirroring the Element
// contract: lower-cased tag, raw class list, own text, bounding box, the
// reduced computed-style subset, curated attributes, children in document
// order. It evaluates to the top-level metadata sequence.
const snapshotScript = `(() => {
	const KEEP_ATTRS = ["id", "src", "alt", "href", "type", "role", "placeholder", "title", "aria-label"];
	const STYLE_KEYS = {
		"display": "display", "position": "position", "font-size": "fontSize",
		"flex-grow": "flexGrow", "grid-column": "gridColumn",
		"width": "width", "height": "height",
		"min-width": "minWidth", "min-height": "minHeight",
		"max-width": "maxWidth", "max-height": "maxHeight"
	};
	const snap = (el) => {
		const rect = el.getBoundingClientRect();
		const cs = window.getComputedStyle(el);
		const style = {};
		for (const prop in STYLE_KEYS) style[STYLE_KEYS[prop]] = cs.getPropertyValue(prop);
		const attrs = {};
		for (const name of KEEP_ATTRS) {
			const v = el.getAttribute(name);
			if (v !== null) attrs[name] = v;
		}
		let text = "";
		for (const child of el.childNodes) {
			if (child.nodeType === Node.TEXT_NODE) text += child.textContent;
		}
		return {
			tagName: el.tagName.toLowerCase(),
			className: typeof el.className === "string" ? el.className : "",
			textContent: text.trim(),
			dimensions: {
				width: Math.max(rect.width, 0), height: Math.max(rect.height, 0),
				x: Math.max(rect.x, 0), y: Math.max(rect.y, 0)
			},
			computedStyle: style,
			attributes: attrs,
			children: Array.from(el.children).map(snap)
		};
	};
	const root = document.querySelector(%s);
	return root ? [snap(root)] : [];
})()`

// CaptureOptions configures a one-shot browser snapshot.
type CaptureOptions struct {
	// Selector picks the scan root; defaults to "body".
	Selector string
	// Timeout bounds the whole navigate-and-snapshot run.
	Timeout time.Duration
	// Headless toggles the browser window; on by default.
	Headless bool
}

func (o *CaptureOptions) setDefaults() {
	if o.Selector == "" {
		o.Selector = "body"
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
}

// CaptureURL navigates a headless browser to url and snapshots the element
// tree rooted at the configured selector. The page is discarded afterwards;
// only the metadata value tree survives, so nothing here holds a live
// browser reference past the call.
func CaptureURL(parent context.Context, logger *zap.Logger, url string, opts CaptureOptions) ([]schemas.ElementMetadata, error) {
	opts.setDefaults()

	ctx, cancel := context.WithTimeout(parent, opts.Timeout)
	defer cancel()

	allocOpts := chromedp.DefaultExecAllocatorOptions[:]
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	logger.Debug("Capturing element tree",
		zap.String("url", url),
		zap.String("selector", opts.Selector))

	var metas []schemas.ElementMetadata
	expr := fmt.Sprintf(snapshotScript, strconv.Quote(opts.Selector))
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(expr, &metas, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithReturnByValue(true)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capturing element tree from %s: %w", url, err)
	}

	logger.Debug("Element tree captured", zap.Int("roots", len(metas)))
	return metas, nil
}
