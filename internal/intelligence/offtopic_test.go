package intelligence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOffTopic(t *testing.T) {
	assert.True(t, IsOffTopic("can you help me debug my Python code"))
	assert.True(t, IsOffTopic("what do you think about the election"))
	assert.True(t, IsOffTopic("should I buy bitcoin"))
	assert.True(t, IsOffTopic("who won the football game"))
	assert.True(t, IsOffTopic("I need a good pasta recipe"))

	assert.False(t, IsOffTopic("I'm feeling anxious about everything"))
	assert.False(t, IsOffTopic("I want to start a meditation habit"))
	assert.False(t, IsOffTopic("work has been exhausting lately"))
}

func TestRedirectReply_ThreeBullets(t *testing.T) {
	reply := RedirectReply()
	assert.Equal(t, 3, strings.Count(reply, "•"))
}

func TestIsCrisis(t *testing.T) {
	assert.True(t, IsCrisis("sometimes I want to kill myself"))
	assert.True(t, IsCrisis("I've been thinking about suicide"))
	assert.True(t, IsCrisis("I just want to hurt myself"))
	assert.True(t, IsCrisis("I don't want to live anymore"))

	assert.False(t, IsCrisis("this deadline is killing me"))
	assert.False(t, IsCrisis("I'm very stressed"))
}

func TestCrisisPreface_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, CrisisPreface())
}
