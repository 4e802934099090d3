package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenlinghub/trainerdex/models"
)

func TestCategorizeOverrides(t *testing.T) {
	categorizer := NewCategorizer(DefaultCategorizerConfig())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "franchise override beats keyword scoring",
			input:    "黑暗之魂3",
			expected: CategoryActionAdventure,
		},
		{
			name:     "english alias is case-insensitive",
			input:    "Resident Evil 4",
			expected: CategoryHorror,
		},
		{
			name:     "override wins even with shooter keywords present",
			input:    "生化危机之枪战",
			expected: CategoryHorror,
		},
		{
			name:     "sekiro chinese title",
			input:    "只狼 影逝二度",
			expected: CategoryActionAdventure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizer.Categorize(tt.input))
		})
	}
}

func TestCategorizeKeywordScoring(t *testing.T) {
	categorizer := NewCategorizer(DefaultCategorizerConfig())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "franchise keyword",
			input:    "使命召唤19",
			expected: CategoryShooter,
		},
		{
			name:     "two keywords accumulate",
			input:    "模拟农场22",
			expected: CategorySimulation,
		},
		{
			name:     "chinese rpg keyword",
			input:    "最终幻想7",
			expected: CategoryRolePlaying,
		},
		{
			name:     "strategy franchise",
			input:    "全面战争 三国",
			expected: CategoryStrategy,
		},
		{
			name:     "no keywords at all",
			input:    "hello world",
			expected: models.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizer.Categorize(tt.input))
		})
	}
}

func TestCategorizeDigitFallback(t *testing.T) {
	categorizer := NewCategorizer(CategorizerConfig{
		Fallbacks: []TitleOverride{
			{"rpg", CategoryRolePlaying},
		},
	})

	// No rules match, but the name carries a digit and a fallback keyword.
	assert.Equal(t, CategoryRolePlaying, categorizer.Categorize("some rpg 2"))
	// Without a digit the fallback never runs.
	assert.Equal(t, models.CategoryOther, categorizer.Categorize("some rpg"))
}

func TestCategorizeEmptyName(t *testing.T) {
	categorizer := NewCategorizer(DefaultCategorizerConfig())
	assert.Equal(t, models.CategoryOther, categorizer.Categorize(""))
	assert.Equal(t, models.CategoryOther, categorizer.Categorize("?!"))
}

func TestCategorizeIsPure(t *testing.T) {
	categorizer := NewCategorizer(DefaultCategorizerConfig())
	names := []string{"黑暗之魂3", "使命召唤19", "完全未知的东西", "Farming Simulator 22"}
	for _, name := range names {
		assert.Equal(t, categorizer.Categorize(name), categorizer.Categorize(name))
	}
}

func TestCategorizeCustomRules(t *testing.T) {
	categorizer := NewCategorizer(CategorizerConfig{
		Rules: []CategoryRule{
			{Label: "测试类", Keywords: []string{"测试"}},
		},
	})

	assert.Equal(t, "测试类", categorizer.Categorize("测试游戏"))
	assert.Equal(t, models.CategoryOther, categorizer.Categorize("别的游戏"))
}
