package render_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/render"
)

type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func baseTraits() lobster.Traits {
	return lobster.Traits{
		lobster.CategoryBackground: "Ocean Blue",
		lobster.CategoryShell:      "Classic Red",
		lobster.CategoryClaw:       "Medium",
		lobster.CategoryEyes:       "Normal",
		lobster.CategoryTail:       "Plain",
		lobster.CategoryAccessory:  "None",
	}
}

func with(t lobster.Traits, category, option string) lobster.Traits {
	out := t.Clone()
	out[category] = option
	return out
}

var center = render.Pt(700, 700)

const baseCommandCount = 19 // 4 segments + fan, body, head, 2 stalks, 4 eye parts, 6 claw parts

func TestAnchorsFromCenter(t *testing.T) {
	a := render.Anchors(center)

	assert.Equal(t, render.Pt(640, 620), a.Body.Min)
	assert.Equal(t, render.Pt(760, 770), a.Body.Max)
	assert.Equal(t, render.Pt(700, 600), a.Head)
	assert.Equal(t, [2]render.Point{render.Pt(670, 590), render.Pt(730, 590)}, a.StalkBase)
	assert.Equal(t, [2]render.Point{render.Pt(670, 555), render.Pt(730, 555)}, a.EyeTip)
	assert.Equal(t, [2]render.Point{render.Pt(615, 670), render.Pt(785, 670)}, a.ClawPivot)
	assert.Equal(t, render.Pt(700, 540), a.Hat)
	assert.Equal(t, render.Pt(700, 585), a.Glasses)
	assert.Equal(t, render.Pt(700, 750), a.Neck)
	assert.Equal(t, [2]render.Point{render.Pt(675, 550), render.Pt(725, 550)}, a.AntennaBase)

	assert.Equal(t, a, render.Anchors(center), "anchors are a pure function of the center")
}

func TestOutlineDarkensEveryChannel(t *testing.T) {
	assert.Equal(t, lobster.RGB(132, 48, 42), render.Outline(lobster.RGB(220, 80, 70)))
	assert.Equal(t, lobster.RGB(153, 153, 153), render.Outline(lobster.RGB(255, 255, 255)))
}

func TestComposeZOrder(t *testing.T) {
	cmds, err := render.Compose(catalog.Default(), center, baseTraits(), nil)
	require.NoError(t, err)
	require.Len(t, cmds, baseCommandCount)

	shell := lobster.RGB(220, 80, 70)
	dark := render.Outline(shell)

	for i := 0; i < render.TailSegments; i++ {
		assert.Equal(t, render.ShapeRect, cmds[i].Shape, "segment %d", i)
	}
	assert.Equal(t, render.Rect(650, 700, 750, 745, &shell, &dark, render.LineWidth), cmds[0])
	assert.Equal(t, render.ShapePolygon, cmds[4].Shape, "fan")
	assert.Equal(t, render.Ellipse(640, 620, 760, 770, &shell, &dark, render.LineWidth), cmds[5], "body")
	assert.Equal(t, render.Circle(700, 600, render.HeadRadius, &shell, &dark, render.LineWidth), cmds[6], "head")
	assert.Equal(t, render.Segment(670, 590, 670, 555, shell, render.LineWidth+2), cmds[7], "left stalk")
	assert.Equal(t, render.Segment(730, 590, 730, 555, shell, render.LineWidth+2), cmds[8], "right stalk")
	assert.Equal(t, render.ShapeEllipse, cmds[9].Shape, "left eyeball")
	assert.Equal(t, render.ShapeRect, cmds[13].Shape, "left arm")
}

func TestTailSegmentsNarrow(t *testing.T) {
	cmds, err := render.Compose(catalog.Default(), center, baseTraits(), nil)
	require.NoError(t, err)
	for i := 0; i < render.TailSegments; i++ {
		w := cmds[i].Points[1].X - cmds[i].Points[0].X
		assert.Equal(t, render.TailWidth-float64(i)*render.TailTaper, w)
	}
}

func TestStripedTailLightensOddSegments(t *testing.T) {
	cmds, err := render.Compose(catalog.Default(), center, with(baseTraits(), lobster.CategoryTail, "Striped"), nil)
	require.NoError(t, err)

	shell := lobster.RGB(220, 80, 70)
	light := lobster.RGB(255, 120, 110)
	assert.Equal(t, shell, *cmds[0].Fill)
	assert.Equal(t, light, *cmds[1].Fill)
	assert.Equal(t, shell, *cmds[2].Fill)
	assert.Equal(t, light, *cmds[3].Fill)
}

func TestSpottedTailJitterIsBounded(t *testing.T) {
	traits := with(baseTraits(), lobster.CategoryTail, "Spotted")

	for _, draw := range []float64{0, 0.5, 0.9999} {
		src := &fixedSource{vals: []float64{draw}}
		cmds, err := render.Compose(catalog.Default(), center, traits, src)
		require.NoError(t, err)
		require.Len(t, cmds, baseCommandCount+render.TailSegments)

		// segment, spot, segment, spot, ...
		for i := 0; i < render.TailSegments; i++ {
			spot := cmds[2*i+1]
			require.Equal(t, render.ShapeEllipse, spot.Shape)
			cx := (spot.Points[0].X + spot.Points[1].X) / 2
			assert.InDelta(t, 700, cx, 20)
			assert.InDelta(t, 700+float64(i)*45+15, (spot.Points[0].Y+spot.Points[1].Y)/2, 1e-9)
			assert.Nil(t, spot.Outline)
		}
		assert.Equal(t, render.TailSegments, src.i, "one draw per segment")
	}
}

func TestFancyTailAddsArcs(t *testing.T) {
	cmds, err := render.Compose(catalog.Default(), center, with(baseTraits(), lobster.CategoryTail, "Fancy"), nil)
	require.NoError(t, err)
	require.Len(t, cmds, baseCommandCount+render.TailSegments+1)

	arcs := 0
	for _, c := range cmds {
		if c.Shape == render.ShapeArc {
			arcs++
			assert.Nil(t, c.Fill)
			assert.Equal(t, 20.0, c.Start)
			assert.Equal(t, 160.0, c.End)
		}
	}
	assert.Equal(t, render.TailSegments, arcs)
}

func TestGooglyPupilsUseInjectedSource(t *testing.T) {
	traits := with(baseTraits(), lobster.CategoryEyes, "Googly")

	src := &fixedSource{vals: []float64{0, 1, 0.5, 0.5}}
	cmds, err := render.Compose(catalog.Default(), center, traits, src)
	require.NoError(t, err)
	assert.Equal(t, 4, src.i)

	left := cmds[10]
	assert.Equal(t, render.Pt(670-5-5, 555+5-5), left.Points[0])
	right := cmds[12]
	assert.Equal(t, render.Pt(730-5, 555-5), right.Points[0])
}

func TestAngryBrowsMirror(t *testing.T) {
	cmds, err := render.Compose(catalog.Default(), center, with(baseTraits(), lobster.CategoryEyes, "Angry"), nil)
	require.NoError(t, err)

	left, right := cmds[10], cmds[13]
	require.Equal(t, render.ShapeLine, left.Shape)
	require.Equal(t, render.ShapeLine, right.Shape)
	for i := range left.Points {
		mirrored := right.Points[len(right.Points)-1-i]
		assert.InDelta(t, 700-left.Points[i].X, mirrored.X-700, 1e-9)
		assert.Equal(t, left.Points[i].Y, mirrored.Y)
	}
}

func TestEveryEyeStyleStaysOnStalkTips(t *testing.T) {
	c := catalog.Default()
	for _, name := range c.Names(lobster.CategoryEyes) {
		cmds, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryEyes, name), nil)
		require.NoError(t, err, name)
		eyes := cmds[9 : len(cmds)-6]
		require.NotEmpty(t, eyes, name)
		for _, e := range eyes {
			for _, p := range e.Points {
				assert.InDelta(t, 700, p.X, 45, "%s x", name)
			}
		}
	}
}

func TestClawsScaleAndMirror(t *testing.T) {
	c := catalog.Default()
	small, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryClaw, "Small"), nil)
	require.NoError(t, err)
	giant, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryClaw, "Gigantic"), nil)
	require.NoError(t, err)

	claws := func(cmds []render.Command) []render.Command { return cmds[len(cmds)-6:] }
	sc, gc := claws(small), claws(giant)

	// arms do not scale
	assert.Equal(t, sc[0], gc[0])
	assert.Equal(t, render.Pt(600, 658), sc[0].Points[0])
	assert.Equal(t, render.Pt(645, 682), sc[0].Points[1])

	// pincer reach is ClawBase*1.1*scale from the pivot
	pivot := render.Pt(615, 670)
	assert.InDelta(t, pivot.X-render.ClawBase*1.1*0.7, sc[1].Points[2].X, 1e-9)
	assert.InDelta(t, pivot.X-render.ClawBase*1.1*2.2, gc[1].Points[2].X, 1e-9)

	// right claw mirrors left about x=700
	for i := 0; i < 3; i++ {
		l, r := gc[i], gc[i+3]
		require.Equal(t, len(l.Points), len(r.Points))
		if l.Shape == render.ShapePolygon {
			for j := range l.Points {
				assert.InDelta(t, 700-l.Points[j].X, r.Points[j].X-700, 1e-9)
				assert.Equal(t, l.Points[j].Y, r.Points[j].Y)
			}
		}
	}
}

func TestEveryCatalogAccessoryRenders(t *testing.T) {
	c := catalog.Default()
	for _, name := range c.Names(lobster.CategoryAccessory) {
		cmds, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryAccessory, name), nil)
		require.NoError(t, err, name)
		if name == "None" {
			assert.Len(t, cmds, baseCommandCount)
			continue
		}
		assert.Greater(t, len(cmds), baseCommandCount, name)
	}
}

func TestAccessoryAnchoring(t *testing.T) {
	c := catalog.Default()
	last := func(name string) render.Command {
		cmds, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryAccessory, name), nil)
		require.NoError(t, err)
		return cmds[baseCommandCount]
	}

	crown := last("Crown")
	assert.Equal(t, render.Pt(665, 540), crown.Points[0], "crown sits on the hat baseline")

	shades := last("Sunglasses")
	assert.Equal(t, render.Pt(652, 570), shades.Points[0], "left lens keyed off the glasses baseline")

	bow := last("Bow Tie")
	assert.Equal(t, render.Pt(665, 738), bow.Points[0], "bow keyed off the neck baseline")

	ant := last("Short Antennae")
	assert.Equal(t, []render.Point{render.Pt(675, 550), render.Pt(665, 500)}, ant.Points)

	halo := last("Halo")
	assert.Nil(t, halo.Fill)
	require.NotNil(t, halo.Outline)
	assert.Equal(t, lobster.RGB(255, 215, 0), *halo.Outline)
}

func TestRenderIsDeterministicWithoutJitter(t *testing.T) {
	c := catalog.Default()
	traits := lobster.Traits{
		lobster.CategoryBackground: "Mystic Purple",
		lobster.CategoryShell:      "Golden",
		lobster.CategoryClaw:       "Mega",
		lobster.CategoryEyes:       "Star Eyes",
		lobster.CategoryTail:       "Striped",
		lobster.CategoryAccessory:  "Viking Helmet",
	}
	a, err := render.Compose(c, center, traits, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := render.Compose(c, center, traits, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func customCatalog(t *testing.T, acc lobster.Option) *catalog.Catalog {
	t.Helper()
	cats := catalog.DefaultCategories()
	last := &cats[len(cats)-1]
	last.Options = append(last.Options, acc)
	c, err := catalog.New(cats)
	require.NoError(t, err)
	return c
}

func TestUnknownAccessoryFailsWithRenderError(t *testing.T) {
	c := customCatalog(t, lobster.Option{
		Name:    "Jetpack",
		Weight:  1,
		Payload: lobster.Payload{Style: "jetpack", Family: lobster.FamilySpecial},
	})

	cmds, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryAccessory, "Jetpack"), nil)
	require.Error(t, err)
	assert.Nil(t, cmds, "no partial figure")

	var re *lobster.RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, lobster.CategoryAccessory, re.Category)
	assert.Equal(t, "Jetpack", re.Option)

	_, err = render.Scene(c, 1400, 1400, with(baseTraits(), lobster.CategoryAccessory, "Jetpack"), nil)
	assert.True(t, errors.As(err, &re))
}

func TestAccessoryFamilyMismatchFails(t *testing.T) {
	c := customCatalog(t, lobster.Option{
		Name:    "Floating Crown",
		Weight:  1,
		Payload: lobster.Payload{Style: string(lobster.AccessoryCrown), Family: lobster.FamilyNeck},
	})
	_, err := render.Compose(c, center, with(baseTraits(), lobster.CategoryAccessory, "Floating Crown"), nil)
	var re *lobster.RenderError
	assert.True(t, errors.As(err, &re))
}

func TestUnknownEyeStyleFails(t *testing.T) {
	cats := catalog.DefaultCategories()
	for i := range cats {
		if cats[i].Name == lobster.CategoryEyes {
			cats[i].Options = append(cats[i].Options, lobster.Option{Name: "Cyclops", Weight: 1, Payload: lobster.Payload{Style: "cyclops"}})
		}
	}
	c, err := catalog.New(cats)
	require.NoError(t, err)

	_, err = render.Compose(c, center, with(baseTraits(), lobster.CategoryEyes, "Cyclops"), nil)
	var re *lobster.RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, lobster.CategoryEyes, re.Category)
}

func TestSceneStartsWithBackground(t *testing.T) {
	cmds, err := render.Scene(catalog.Default(), 1400, 1400, baseTraits(), nil)
	require.NoError(t, err)
	require.Len(t, cmds, baseCommandCount+1)

	bg := lobster.RGB(200, 230, 255)
	assert.Equal(t, render.Background(1400, 1400, bg), cmds[0])
	assert.Equal(t, render.Pt(650, 700), cmds[1].Points[0], "figure is centered on the canvas")
}

func TestAccessoryFamilies(t *testing.T) {
	c := catalog.Default()
	opts, ok := c.Options(lobster.CategoryAccessory)
	require.True(t, ok)
	for _, o := range opts {
		f, ok := render.AccessoryFamily(lobster.AccessoryStyle(o.Payload.Style))
		require.True(t, ok, o.Name)
		assert.Equal(t, o.Payload.Family, f, o.Name)
	}
	_, ok = render.AccessoryFamily("sombrero")
	assert.False(t, ok, "unreachable recipes are not ported")
}
