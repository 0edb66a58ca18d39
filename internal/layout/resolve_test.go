package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/reword/internal/reword"
)

func ptr[T any](v T) *T { return &v }

func TestResolve_RubyPositionTruthTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		baseline         reword.BaselineTarget
		translationFirst bool
		wantBase         Role
		wantAnnotation   Role
		wantPosition     RubyPosition
	}{
		{
			name:             "translation base, translation first",
			baseline:         reword.BaselineTranslation,
			translationFirst: true,
			wantBase:         RoleTranslation,
			wantAnnotation:   RoleOriginal,
			wantPosition:     RubyUnder,
		},
		{
			name:             "translation base, original first",
			baseline:         reword.BaselineTranslation,
			translationFirst: false,
			wantBase:         RoleTranslation,
			wantAnnotation:   RoleOriginal,
			wantPosition:     RubyOver,
		},
		{
			name:             "original base, translation first",
			baseline:         reword.BaselineOriginal,
			translationFirst: true,
			wantBase:         RoleOriginal,
			wantAnnotation:   RoleTranslation,
			wantPosition:     RubyOver,
		},
		{
			name:             "original base, original first",
			baseline:         reword.BaselineOriginal,
			translationFirst: false,
			wantBase:         RoleOriginal,
			wantAnnotation:   RoleTranslation,
			wantPosition:     RubyUnder,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := reword.StyleConfig{
				LayoutMode: reword.LayoutVertical,
				Vertical: &reword.LayoutSpecificConfig{
					TranslationFirst: tt.translationFirst,
					BaselineTarget:   tt.baseline,
				},
			}

			r := Resolve(s)

			require.True(t, r.Vertical())
			assert.Equal(t, tt.wantBase, r.Base)
			assert.Equal(t, tt.wantAnnotation, r.Annotation)
			assert.Equal(t, tt.wantPosition, r.RubyPosition)
		})
	}
}

func TestResolve_Horizontal(t *testing.T) {
	t.Parallel()

	wrappers := reword.Wrappers{
		Translation: reword.Wrapper{Prefix: "[", Suffix: "]"},
		Original:    reword.Wrapper{Prefix: "(", Suffix: ")"},
	}

	t.Run("original first", func(t *testing.T) {
		t.Parallel()
		r := Resolve(reword.StyleConfig{
			LayoutMode: reword.LayoutHorizontal,
			Horizontal: &reword.LayoutSpecificConfig{Wrappers: wrappers},
		})

		assert.Equal(t, [2]Role{RoleOriginal, RoleTranslation}, r.Order)
		assert.Equal(t, wrappers, r.Wrappers)
		assert.Equal(t, "(", r.Wrapper(RoleOriginal).Prefix)
		assert.Equal(t, "]", r.Wrapper(RoleTranslation).Suffix)
		assert.False(t, r.Vertical())
		assert.Empty(t, r.RubyPosition)
		assert.Empty(t, r.Base)
	})

	t.Run("translation first", func(t *testing.T) {
		t.Parallel()
		r := Resolve(reword.StyleConfig{
			LayoutMode: reword.LayoutHorizontal,
			Horizontal: &reword.LayoutSpecificConfig{TranslationFirst: true, Wrappers: wrappers},
		})

		assert.Equal(t, [2]Role{RoleTranslation, RoleOriginal}, r.Order)
	})

	t.Run("baseline target is ignored", func(t *testing.T) {
		t.Parallel()
		r := Resolve(reword.StyleConfig{
			LayoutMode: reword.LayoutHorizontal,
			Horizontal: &reword.LayoutSpecificConfig{BaselineTarget: reword.BaselineTranslation},
		})

		assert.Empty(t, r.Base)
		assert.Empty(t, r.RubyPosition)
	})
}

func TestResolve_UsesActiveModeOnly(t *testing.T) {
	t.Parallel()

	s := reword.StyleConfig{
		LayoutMode: reword.LayoutVertical,
		Horizontal: &reword.LayoutSpecificConfig{
			Wrappers: reword.Wrappers{Original: reword.Wrapper{Prefix: "(", Suffix: ")"}},
		},
		Vertical: &reword.LayoutSpecificConfig{TranslationFirst: true},
	}

	r := Resolve(s)

	assert.Equal(t, reword.Wrapper{}, r.Wrappers.Original)
	assert.Equal(t, [2]Role{RoleTranslation, RoleOriginal}, r.Order)
}

func TestResolve_MissingBaselineDefaultsToOriginal(t *testing.T) {
	t.Parallel()

	r := Resolve(reword.StyleConfig{
		LayoutMode: reword.LayoutVertical,
		Vertical:   &reword.LayoutSpecificConfig{TranslationFirst: true},
	})

	assert.Equal(t, RoleOriginal, r.Base)
	assert.Equal(t, RubyOver, r.RubyPosition)
}

func TestNormalize_LegacyStyle(t *testing.T) {
	t.Parallel()

	legacy := reword.StyleConfig{Color: "#000"}

	got := Normalize(legacy)

	assert.Equal(t, reword.LayoutHorizontal, got.LayoutMode)
	require.NotNil(t, got.Horizontal)
	require.NotNil(t, got.Vertical)
	assert.False(t, got.Horizontal.TranslationFirst)
	assert.Equal(t, reword.Wrapper{}, got.Horizontal.Wrappers.Translation)
	assert.Equal(t, reword.Wrapper{Prefix: "(", Suffix: ")"}, got.Horizontal.Wrappers.Original)
	assert.True(t, got.Vertical.TranslationFirst)
	assert.Equal(t, reword.BaselineTranslation, got.Vertical.BaselineTarget)
	assert.Equal(t, reword.Wrappers{}, got.Vertical.Wrappers)

	assert.Nil(t, legacy.Horizontal, "input must not be modified")
}

func TestNormalize_KeepsExisting(t *testing.T) {
	t.Parallel()

	h := &reword.LayoutSpecificConfig{TranslationFirst: true}
	got := Normalize(reword.StyleConfig{LayoutMode: reword.LayoutVertical, Horizontal: h})

	assert.Same(t, h, got.Horizontal)
	assert.Equal(t, reword.LayoutVertical, got.LayoutMode)
}

func TestResolve_LegacyVerticalFallback(t *testing.T) {
	t.Parallel()

	r := Resolve(reword.StyleConfig{LayoutMode: reword.LayoutVertical})

	assert.Equal(t, RoleTranslation, r.Base)
	assert.Equal(t, RoleOriginal, r.Annotation)
	assert.Equal(t, RubyUnder, r.RubyPosition)
}

func TestActive(t *testing.T) {
	t.Parallel()

	mode, cfg := Active(reword.StyleConfig{
		LayoutMode: reword.LayoutHorizontal,
		Horizontal: ptr(reword.LayoutSpecificConfig{TranslationFirst: true}),
	})

	assert.Equal(t, reword.LayoutHorizontal, mode)
	assert.True(t, cfg.TranslationFirst)
}
