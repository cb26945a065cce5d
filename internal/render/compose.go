package render

import (
	"fmt"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

// figure holds the resolved, validated inputs of one composition.
type figure struct {
	shell     lobster.Color
	clawScale float64
	eyes      eyeRecipe
	tail      tailRecipe
	accessory accessoryRecipe
}

// resolve looks up every payload and recipe before anything is drawn, so a
// missing recipe never leaves a partial figure behind.
func resolve(cat *catalog.Catalog, t lobster.Traits) (figure, error) {
	var f figure
	if err := cat.Validate(t); err != nil {
		return f, err
	}

	shell, _ := cat.Payload(t, lobster.CategoryShell)
	claw, _ := cat.Payload(t, lobster.CategoryClaw)
	eyes, _ := cat.Payload(t, lobster.CategoryEyes)
	tail, _ := cat.Payload(t, lobster.CategoryTail)
	acc, _ := cat.Payload(t, lobster.CategoryAccessory)

	f.shell = shell.Color
	f.clawScale = claw.Scale
	if f.clawScale <= 0 {
		return f, &lobster.RenderError{Category: lobster.CategoryClaw, Option: t[lobster.CategoryClaw], Reason: "claw scale must be positive"}
	}

	var ok bool
	if f.eyes, ok = eyeRecipeFor(lobster.EyeStyle(eyes.Style)); !ok {
		return f, &lobster.RenderError{Category: lobster.CategoryEyes, Option: t[lobster.CategoryEyes], Reason: fmt.Sprintf("no recipe for eye style %q", eyes.Style)}
	}
	if f.tail, ok = tailRecipeFor(lobster.TailStyle(tail.Style)); !ok {
		return f, &lobster.RenderError{Category: lobster.CategoryTail, Option: t[lobster.CategoryTail], Reason: fmt.Sprintf("no recipe for tail style %q", tail.Style)}
	}

	family, recipe, ok := accessoryRecipeFor(lobster.AccessoryStyle(acc.Style))
	if !ok {
		return f, &lobster.RenderError{Category: lobster.CategoryAccessory, Option: t[lobster.CategoryAccessory], Reason: fmt.Sprintf("no recipe for accessory style %q", acc.Style)}
	}
	if acc.Family != family {
		return f, &lobster.RenderError{
			Category: lobster.CategoryAccessory,
			Option:   t[lobster.CategoryAccessory],
			Reason:   fmt.Sprintf("family %q does not match recipe family %q", acc.Family, family),
		}
	}
	f.accessory = recipe
	return f, nil
}

// Compose returns the draw commands for a lobster centered at center.
// rnd feeds the bounded jitter of googly pupils and tail spots; a nil rnd
// centers them. On error no commands are returned.
func Compose(cat *catalog.Catalog, center Point, t lobster.Traits, rnd Source) ([]Command, error) {
	f, err := resolve(cat, t)
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = centered{}
	}

	a := Anchors(center)
	dark := Outline(f.shell)

	cmds := make([]Command, 0, 48)
	cmds = append(cmds, drawTail(a, f.shell, dark, f.tail, rnd)...)
	cmds = append(cmds,
		Ellipse(a.Body.Min.X, a.Body.Min.Y, a.Body.Max.X, a.Body.Max.Y, paint(f.shell), paint(dark), LineWidth),
		Circle(a.Head.X, a.Head.Y, HeadRadius, paint(f.shell), paint(dark), LineWidth),
	)
	cmds = append(cmds, drawStalks(a, f.shell)...)
	cmds = append(cmds, f.eyes(a.EyeTip, dark, rnd)...)
	cmds = append(cmds, drawClaws(a, f.shell, dark, f.clawScale)...)
	if f.accessory != nil {
		cmds = append(cmds, f.accessory(a, dark)...)
	}
	return cmds, nil
}

// Background returns a full-canvas rectangle in c.
func Background(width, height int, c lobster.Color) Command {
	return Rect(0, 0, float64(width), float64(height), paint(c), nil, 0)
}

// Scene composes a complete token image: the trait background followed by
// the lobster at the canvas center.
func Scene(cat *catalog.Catalog, width, height int, t lobster.Traits, rnd Source) ([]Command, error) {
	bg, err := cat.Payload(t, lobster.CategoryBackground)
	if err != nil {
		return nil, err
	}
	fig, err := Compose(cat, Pt(float64(width)/2, float64(height)/2), t, rnd)
	if err != nil {
		return nil, err
	}
	return append([]Command{Background(width, height, bg.Color)}, fig...), nil
}
