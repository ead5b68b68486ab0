package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	labels := []string{all[0].Label, all[1].Label, all[2].Label, all[3].Label}
	assert.Equal(t, []string{"快樂", "悲傷", "生氣", "驚喜"}, labels)
}

func TestLookup(t *testing.T) {
	e, err := Lookup("happy")
	require.NoError(t, err)
	assert.Equal(t, "快樂", e.Label)
	assert.Equal(t, "ic_happy", e.Icon.Ref)

	_, err = Lookup("bored")
	assert.ErrorIs(t, err, ErrUnknownEmotion)
}
