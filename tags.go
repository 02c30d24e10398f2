package assetkit

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/assetkit/pkg/manifest"
)

// ScriptTags renders a <script> tag per asset, in list order. Assets carrying
// an integrity hash get integrity and crossorigin attributes. The component
// embeds directly into templ views:
//
//	@assetkit.ScriptTags(js)
func ScriptTags(assets []manifest.Asset) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, a := range assets {
			if _, err := fmt.Fprintf(w, `<script src="%s"%s defer></script>`,
				templ.EscapeString(a.Path), integrityAttrs(a)); err != nil {
				return err
			}
		}
		return nil
	})
}

// StyleTags renders a stylesheet <link> tag per asset, in list order.
func StyleTags(assets []manifest.Asset) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, a := range assets {
			if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s"%s>`,
				templ.EscapeString(a.Path), integrityAttrs(a)); err != nil {
				return err
			}
		}
		return nil
	})
}

func integrityAttrs(a manifest.Asset) string {
	if a.Integrity == "" {
		return ""
	}
	return fmt.Sprintf(` integrity="%s" crossorigin="anonymous"`, templ.EscapeString(a.Integrity))
}
