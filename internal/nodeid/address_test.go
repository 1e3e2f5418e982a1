package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_String(t *testing.T) {
	root := Address{}
	assert.Equal(t, "", root.String())

	addr := root.Child("frame", 0).Child("box", 1).Child("text", 0)
	assert.Equal(t, "frame[0].box[1].text[0]", addr.String())
}

func TestAddress_ChildDoesNotAliasSiblings(t *testing.T) {
	parent := Address{}.Child("frame", 0)

	first := parent.Child("box", 0)
	second := parent.Child("box", 1)

	assert.Equal(t, "frame[0].box[0]", first.String())
	assert.Equal(t, "frame[0].box[1]", second.String())
	assert.Equal(t, "frame[0]", parent.String())
}
