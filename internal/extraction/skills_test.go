package extraction

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSkillToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{"Plain skill", "Python", true},
		{"Acronym phrase", "Power BI", true},
		{"Allowed title phrase", "Machine Learning", true},
		{"Allowed long title phrase", "Statistics for Data Science", true},
		{"Empty", "", false},
		{"Whitespace", "   ", false},
		{"Number", "2021", false},
		{"Contains year", "Python 2020", false},
		{"Label", "Languages: Python", false},
		{"Long phrase", "one two three four five", false},
		{"Separator line", "-----", false},
		{"Mostly underscores", "__________x", false},
		{"Soft skill", "Teamwork", false},
		{"Self learning", "self-learning", false},
		{"Academic phrase", "Relevant Coursework", false},
		{"Institution", "ABC college", false},
		{"Cloud platform phrase", "AWS Cloud Platform", false},
		{"Combined tools", "Git & GitHub", false},
		{"Person name", "John Smith", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSkillToken(tt.token))
		})
	}
}

func TestCleanSkillToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"React.js", "React"},
		{"Python (Basic)", "Python"},
		{"_____SQL_____", "SQL"},
		{" Java. ", "Java"},
		{"Node.JS", "Node"},
		{"Excel)", "Excel"},
		{"=====", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanSkillToken(tt.input))
		})
	}
}

func TestExtractSkills_SkillsSection(t *testing.T) {
	text := "SKILLS\nPython, SQL, React"
	result := ExtractSkills(text, SplitSections(text))

	assert.Equal(t, []string{"Python", "React", "SQL"}, result.Value)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestExtractSkills_CanonicalMapping(t *testing.T) {
	text := "Technical Skills\njs | pyspark • Power BI"
	result := ExtractSkills(text, SplitSections(text))

	assert.Equal(t, []string{"JavaScript", "Power BI", "PySpark"}, result.Value)
}

func TestExtractSkills_FilterRejectsNoise(t *testing.T) {
	text := "Skills\nTeamwork, 2021, Communication, Docker\n__________\nJohn Smith"
	result := ExtractSkills(text, SplitSections(text))

	assert.Equal(t, []string{"Docker"}, result.Value)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestExtractSkills_KeywordScanWithoutSection(t *testing.T) {
	text := "Worked with Docker and AWS daily"
	result := ExtractSkills(text, SplitSections(text))

	assert.Equal(t, []string{"AWS", "Docker"}, result.Value)
	assert.Equal(t, 0.65, result.Confidence)
}

func TestExtractSkills_KeywordScanIsWholeWord(t *testing.T) {
	text := "Built javascripting tools with C++ and next.js"
	result := ExtractSkills(text, SplitSections(text))

	// "c" also matches on its own inside "c++"
	assert.Equal(t, []string{"C", "C++", "JavaScript", "Next.js"}, result.Value)
}

func TestExtractSkills_Deduplicates(t *testing.T) {
	text := "Skills\nPython, python, PYTHON\nAlso used Python daily"
	result := ExtractSkills(text, SplitSections(text))

	assert.Equal(t, []string{"Also used Python daily", "Python"}, result.Value)
}

func TestExtractSkills_Empty(t *testing.T) {
	result := ExtractSkills("", SplitSections(""))

	assert.Empty(t, result.Value)
	assert.NotNil(t, result.Value)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestExtractSkills_SortedAndUnique(t *testing.T) {
	text := "Skills\nDocker, docker, Kafka, AWS / Azure, git, Git, Zsh, awk\n\nExperience\nUsed spark and Kafka"
	result := ExtractSkills(text, SplitSections(text))

	assert.True(t, sort.StringsAreSorted(result.Value), "skills should be sorted")
	seen := make(map[string]bool)
	for _, s := range result.Value {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
	assert.Contains(t, result.Value, "Apache Spark")
}
