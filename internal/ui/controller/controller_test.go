package controller_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/application/port/mocks"
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
	"github.com/bnema/datagrid/internal/ui/controller"
)

type fixture struct {
	ctx      context.Context
	ctrl     *controller.Controller
	tiling   *entity.Tiling
	renderer *mocks.MockRenderer
	now      time.Time
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func newFixture(t *testing.T, demo bool) *fixture {
	t.Helper()
	return newFixtureWith(t, controller.Options{Demo: demo})
}

func newFixtureWith(t *testing.T, opts controller.Options) *fixture {
	t.Helper()
	f := &fixture{
		ctx: logging.WithContext(context.Background(), zerolog.Nop()),
		now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	tl, err := entity.NewTiling(4, 4, []entity.PanelSpec{
		{ID: "p1", Rect: entity.NewRect(0, 0, 1, 3)},
		{ID: "p2", Rect: entity.NewRect(2, 0, 3, 3)},
	})
	require.NoError(t, err)
	f.tiling = tl

	frame := entity.NewDataFrame()
	for _, name := range []string{"d_sin", "d_cos"} {
		require.NoError(t, frame.Add(&entity.Dataset{Name: name, X: []float64{0, 1}, Y: []float64{1, 2}}))
	}

	f.renderer = mocks.NewMockRenderer(t)
	f.renderer.EXPECT().Invalidate(mock.Anything, mock.Anything).Return().Maybe()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return f.now }).Maybe()

	n := 2
	ids := func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
	plot := usecase.NewPlotDatasetUseCase(f.renderer, nil).WithRandom(func(int) int { return 0 })
	f.ctrl = controller.New(controller.Deps{
		Tiling:   tl,
		Frame:    frame,
		Panels:   usecase.NewManagePanelsUseCase(f.renderer, ids),
		Plot:     plot,
		Style:    usecase.NewStyleSeriesUseCase(f.renderer),
		Renderer: f.renderer,
		Clock:    clock,
	}, opts)
	return f
}

func (f *fixture) plot(t *testing.T, panel entity.PanelID) entity.Artist {
	t.Helper()
	p, err := f.tiling.Panel(panel)
	require.NoError(t, err)
	a, err := p.Plot(&entity.Dataset{Name: "d_x", X: []float64{0}, Y: []float64{0}}, entity.PlotLine, nil)
	require.NoError(t, err)
	return a
}

func TestController_ButtonMapping(t *testing.T) {
	f := newFixture(t, false)

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonMiddle, Panel: "p1", X: 3, Y: 4})
	require.NotNil(t, f.ctrl.Menu())
	assert.Equal(t, controller.MenuGrid, f.ctrl.Menu().Kind)
	assert.Equal(t, entity.PanelID("p1"), f.ctrl.Highlighted())
	assert.Equal(t, 3, f.ctrl.Menu().X)

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonRight, Panel: "p2"})
	require.NotNil(t, f.ctrl.Menu())
	assert.Equal(t, controller.MenuData, f.ctrl.Menu().Kind)
	assert.Equal(t, []string{"d_sin", "d_cos"}, f.ctrl.Menu().Datasets)
	assert.Equal(t, entity.PanelID("p2"), f.ctrl.Highlighted())

	// A left press on a panel is left to the pick handler.
	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonLeft, Panel: "p1"})
	assert.Equal(t, controller.MenuData, f.ctrl.Menu().Kind)

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonLeft})
	assert.Nil(t, f.ctrl.Menu())
	assert.Empty(t, f.ctrl.Highlighted())
}

func TestController_PickDebounce(t *testing.T) {
	f := newFixture(t, false)
	a := f.plot(t, "p1")
	pick := controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: a.ID()}

	// The window starts at construction.
	f.advance(100 * time.Millisecond)
	assert.False(t, f.ctrl.HandlePick(f.ctx, pick))
	assert.Nil(t, f.ctrl.Menu())

	f.advance(400 * time.Millisecond)
	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))
	require.NotNil(t, f.ctrl.Menu())
	assert.Equal(t, controller.MenuAction, f.ctrl.Menu().Kind)
	assert.Equal(t, "d_x", f.ctrl.Menu().Series.Label)

	// Overlapping series report again for the same press.
	f.advance(10 * time.Millisecond)
	assert.False(t, f.ctrl.HandlePick(f.ctx, pick))

	f.advance(time.Second)
	assert.True(t, f.ctrl.HandlePick(f.ctx, controller.Pick{Button: controller.ButtonRight, Panel: "p1", Artist: a.ID()}))
	assert.Nil(t, f.ctrl.Menu())
}

func TestController_PickDebounceDisabled(t *testing.T) {
	f := newFixtureWith(t, controller.Options{PickDebounce: time.Second, NoPickDebounce: true})
	a := f.plot(t, "p1")
	pick := controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: a.ID()}

	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))
	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))
}

func TestController_SetPickDebounce(t *testing.T) {
	f := newFixture(t, false)
	a := f.plot(t, "p1")
	pick := controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: a.ID()}

	f.ctrl.SetPickDebounce(-time.Second)
	assert.False(t, f.ctrl.HandlePick(f.ctx, pick), "negative window keeps the default")

	f.ctrl.SetPickDebounce(0)
	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))
	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))

	f.ctrl.SetPickDebounce(200 * time.Millisecond)
	f.advance(100 * time.Millisecond)
	assert.False(t, f.ctrl.HandlePick(f.ctx, pick))
	f.advance(200 * time.Millisecond)
	assert.True(t, f.ctrl.HandlePick(f.ctx, pick))
}

func TestController_SingleMenuSlot(t *testing.T) {
	f := newFixture(t, false)

	for i := 0; i < 5; i++ {
		button := controller.ButtonMiddle
		if i%2 == 1 {
			button = controller.ButtonRight
		}
		f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: button, Panel: "p1"})
		require.NotNil(t, f.ctrl.Menu())
	}
	assert.Equal(t, controller.MenuGrid, f.ctrl.Menu().Kind)

	f.ctrl.Dismiss(f.ctx)
	f.ctrl.Dismiss(f.ctx)
	assert.Nil(t, f.ctrl.Menu())
}

func TestController_GridMenuSplitAndExtend(t *testing.T) {
	f := newFixture(t, true)

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonMiddle, Panel: "p1"})
	menu := f.ctrl.Menu()
	require.NotNil(t, menu)
	require.Equal(t, usecase.GridActionSplit, menu.Grid[1].Action)
	assert.Equal(t, entity.AxisVertical, menu.Grid[1].Axis)

	f.ctrl.SelectGrid(f.ctx, menu.Grid[1])
	assert.Nil(t, f.ctrl.Menu())
	assert.Equal(t, 3, f.tiling.Len())

	p3, err := f.tiling.Panel("p3")
	require.NoError(t, err)
	assert.Len(t, p3.Artists(), 1, "demo mode fills the new panel")

	// P2 has no full-edge neighbor on top any more.
	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonMiddle, Panel: "p2"})
	f.ctrl.SelectGrid(f.ctx, usecase.GridMenuEntry{Action: usecase.GridActionExtend, Direction: entity.DirTop})
	require.NotNil(t, f.ctrl.Notice())
	assert.Equal(t, controller.NoticeWarn, f.ctrl.Notice().Level)
	assert.Equal(t, 3, f.tiling.Len())
	assert.Nil(t, f.ctrl.Menu())

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonMiddle, Panel: "p1"})
	f.ctrl.SelectGrid(f.ctx, usecase.GridMenuEntry{Action: usecase.GridActionExtend, Direction: entity.DirRight})
	assert.Equal(t, 2, f.tiling.Len())
	require.NoError(t, f.tiling.Validate())
}

func TestController_DataMenuPlots(t *testing.T) {
	f := newFixture(t, false)

	f.ctrl.HandlePress(f.ctx, controller.ButtonPress{Button: controller.ButtonRight, Panel: "p2"})
	f.ctrl.SelectData(f.ctx, "d_cos", entity.PlotScatter)

	p2, err := f.tiling.Panel("p2")
	require.NoError(t, err)
	require.Len(t, p2.Artists(), 1)
	assert.Equal(t, entity.PlotScatter, p2.Artists()[0].Kind())
	assert.Nil(t, f.ctrl.Menu())

	// Without an open data menu the selection is ignored.
	f.ctrl.SelectData(f.ctx, "d_sin", entity.PlotLine)
	assert.Len(t, p2.Artists(), 1)
}

func TestController_ActionMenu(t *testing.T) {
	f := newFixture(t, false)
	a := f.plot(t, "p1")
	b := f.plot(t, "p1")
	f.advance(time.Second)

	require.True(t, f.ctrl.HandlePick(f.ctx, controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: a.ID()}))
	f.ctrl.OpenColorPicker(f.ctx)
	require.Equal(t, controller.MenuColor, f.ctrl.Menu().Kind)
	f.ctrl.ApplyColor(f.ctx, "#00ff00")
	assert.Equal(t, entity.Color("#00ff00"), a.Color())
	assert.Nil(t, f.ctrl.Menu())

	f.advance(time.Second)
	require.True(t, f.ctrl.HandlePick(f.ctx, controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: a.ID()}))
	f.ctrl.OpenColorPicker(f.ctx)
	f.ctrl.ApplyColor(f.ctx, "")
	assert.Equal(t, entity.Color("#00ff00"), a.Color())

	f.advance(time.Second)
	require.True(t, f.ctrl.HandlePick(f.ctx, controller.Pick{Button: controller.ButtonLeft, Panel: "p1", Artist: b.ID()}))
	f.ctrl.RemoveSeries(f.ctx)
	p1, _ := f.tiling.Panel("p1")
	require.Len(t, p1.Artists(), 1)
	assert.Equal(t, a.ID(), p1.Artists()[0].ID())
}

func TestController_HelpIsSingleton(t *testing.T) {
	f := newFixture(t, false)

	assert.True(t, f.ctrl.OpenHelp())
	assert.False(t, f.ctrl.OpenHelp())
	assert.True(t, f.ctrl.HelpOpen())

	f.ctrl.CloseHelp()
	assert.True(t, f.ctrl.OpenHelp())
}
