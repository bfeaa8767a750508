package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tax := Default()

	assert.Equal(t, "programming", tax.CategoryOf("Python"))
	assert.Equal(t, "programming", tax.CategoryOf("python"))
	assert.Equal(t, "cloud", tax.CategoryOf("Docker"))
	assert.Equal(t, "ai_ml", tax.CategoryOf("TensorFlow"))
	assert.Equal(t, "", tax.CategoryOf("COBOL"))
}

func TestShareCategory(t *testing.T) {
	tax := Default()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"both programming", "Python", "Go", true},
		{"case insensitive", "python", "GO", true},
		{"different categories", "Python", "Docker", false},
		{"javascript spans frontend", "JavaScript", "React", true},
		{"unknown skill", "Python", "COBOL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.ShareCategory(tt.a, tt.b))
		})
	}
}

func TestAreRelated(t *testing.T) {
	tax := Default()

	assert.True(t, tax.AreRelated("React", "Vue"))
	assert.True(t, tax.AreRelated("Vue", "React"))
	assert.True(t, tax.AreRelated("docker", "kubernetes"))
	assert.False(t, tax.AreRelated("React", "MySQL"))
}

func TestShareCluster(t *testing.T) {
	tax := Default()

	assert.True(t, tax.ShareCluster("kubernetes", "k8s"))
	assert.True(t, tax.ShareCluster("machine learning", "artificial intelligence"))
	assert.True(t, tax.ShareCluster("AWS", "Amazon Web Services"))
	assert.False(t, tax.ShareCluster("kubernetes", "spark"))
}

func TestMappingFor(t *testing.T) {
	tax := Default()

	aliases := tax.MappingFor("Machine Learning")
	assert.Contains(t, aliases, "tensorflow")
	assert.Contains(t, aliases, "pytorch")

	assert.Nil(t, tax.MappingFor("Underwater Basket Weaving"))
}

func TestExpand(t *testing.T) {
	tax := Default()

	implied := tax.Expand("TensorFlow")
	assert.Contains(t, implied, "machine learning")

	assert.Contains(t, tax.Expand("docker"), "microservices")
	assert.Nil(t, tax.Expand("Python"))
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"golang", "Go"},
		{"k8s", "Kubernetes"},
		{"  nodejs  ", "Node.js"},
		{"js", "JavaScript"},
		{"PyTorch", "PyTorch"},
		{"python", "Python"},
		{"AWS", "AWS"},
		{"", ""},
		{"  ", ""},
		{"machine learning", "machine learning"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkillName(tt.input))
		})
	}
}

func TestNormalizeSkillList_Dedupes(t *testing.T) {
	got := NormalizeSkillList([]string{"golang", "Go", "python", "", "  ", "Python"})
	assert.Equal(t, []string{"Go", "Python"}, got)
}
