package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/keymap"
	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Count())
	assert.Equal(t, 0, bar.Progress())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.NotNil(t, bar.Init())
}

func TestStatusBar_Update_IgnoresKeys(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_Setters(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateScanning)
	bar.SetMessage("test message")
	bar.SetCount(42)
	bar.SetWidth(120)

	assert.Equal(t, StateScanning, bar.State())
	assert.Equal(t, "test message", bar.Message())
	assert.Equal(t, 42, bar.Count())
	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_SetProgress_Clamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}

	for _, tt := range tests {
		bar := NewBar(nil, nil)
		bar.SetProgress(tt.in)
		assert.Equal(t, tt.want, bar.Progress())
	}
}

func TestStatusBar_ProgressBar(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetProgress(50)

	view := bar.ProgressBar()

	assert.Contains(t, view, "██████████░░░░░░░░░░")
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("error message")
	bar.SetCount(10)
	bar.SetProgress(30)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Count())
	assert.Equal(t, 0, bar.Progress())
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Bar)
		want    []string
		notWant []string
	}{
		{
			name:  "ready",
			setup: func(_ *Bar) {},
			want:  []string{"Ready", "s: scan", "q: quit"},
		},
		{
			name: "ready with candidates",
			setup: func(b *Bar) {
				b.SetCount(7)
			},
			want: []string{"7 candidates"},
		},
		{
			name: "scanning",
			setup: func(b *Bar) {
				b.SetState(StateScanning)
				b.SetProgress(40)
				b.SetCount(3)
			},
			want:    []string{"40%", "3 leads", "x: stop"},
			notWant: []string{"s: scan"},
		},
		{
			name: "error",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("boom")
			},
			want: []string{"Error: boom"},
		},
		{
			name: "radar",
			setup: func(b *Bar) {
				b.SetState(StateRadar)
			},
			want: []string{"Onomastic radar", "/: filter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			tt.setup(bar)

			view := bar.View()

			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, view, w)
			}
		})
	}
}
