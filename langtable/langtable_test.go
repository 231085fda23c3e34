package langtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByPublicIDMatchesSeedDocument(t *testing.T) {
	rec, ok := ByPublicID(0x05)
	require.True(t, ok)
	assert.Equal(t, SI10, rec.ID)
	assert.Equal(t, "si", rec.RootElement)
}

func TestByPublicIDStringAndRootElement(t *testing.T) {
	byStr, ok := ByPublicIDString("-//WAPFORUM//DTD SI 1.0//EN")
	require.True(t, ok)
	byRoot, ok := ByRootElement("si")
	require.True(t, ok)
	assert.Equal(t, byStr.ID, byRoot.ID)
}

func TestFindTagCodePageFallback(t *testing.T) {
	rec, _ := ByID(SyncML12)
	entry, ok := rec.FindTag(0, "Type")
	require.True(t, ok, "name-only fallback across pages must still find Type on page 1")
	assert.Equal(t, byte(1), entry.Page)

	entry, ok = rec.FindTag(1, "Type")
	require.True(t, ok)
	assert.Equal(t, byte(1), entry.Page)
}

func TestFindAttrLongestPrefixWins(t *testing.T) {
	rec, _ := ByID(SI10)
	entry, ok := rec.FindAttr("href", "http://www.example.com/")
	require.True(t, ok)
	assert.Equal(t, "http://www.", entry.ValuePrefix)
}

func TestFindAttrNoPrefixMatchFallsBackToBare(t *testing.T) {
	rec, _ := ByID(SI10)
	entry, ok := rec.FindAttr("href", "ftp://example.com/")
	require.True(t, ok)
	assert.Equal(t, "", entry.ValuePrefix)
}

func TestFindAttrValueSegmentGreedy(t *testing.T) {
	rec, _ := ByID(SI10)
	entry, ok := rec.FindAttrValueSegment(".org/more")
	require.True(t, ok)
	assert.Equal(t, ".org/", entry.Value)
}

func TestFindTagByToken(t *testing.T) {
	rec, _ := ByID(SI10)
	entry, ok := rec.FindTagByToken(0, 0x05)
	require.True(t, ok)
	assert.Equal(t, "si", entry.Name)

	_, ok = rec.FindTagByToken(0, 0x7F)
	assert.False(t, ok)
}

func TestGenericHasNoTags(t *testing.T) {
	rec, ok := ByID(Generic)
	require.True(t, ok)
	_, found := rec.FindTag(0, "anything")
	assert.False(t, found)
}
