package uhex

import (
	"strings"
	"testing"

	"github.com/boardhex/uhex/ihex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleRecordHex = ":10000000000102030405060708090A0B0C0D0E0F74\n:00000001FF\n"

func TestComposeSectionScenario(t *testing.T) {
	got, err := ComposeSection(singleRecordHex, 0x9900)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, ":020000040000FA\n:0400000A9900C0DEBB\n"))
	assert.True(t, strings.HasSuffix(got, ":00000001FF\n"))
	assert.Equal(t, 0, len(got)%BlockSize)
	assert.Equal(t, BlockSize, len(got))
}

func TestComposeBlockScenario(t *testing.T) {
	got, err := ComposeBlock(singleRecordHex, 0x9900)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, ":020000040000FA\n:0400000A9900C0DEBB\n"))
	assert.True(t, strings.HasSuffix(got, ":0000000BF5\n:00000001FF\n"))
}

func TestComposeEmptyInput(t *testing.T) {
	got, err := ComposeSection("", 0x9900)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = ComposeBlock("", 0x9900)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestComposeRejectsAlreadyUniversalHex(t *testing.T) {
	already, err := ComposeSection(singleRecordHex, 0x9900)
	require.NoError(t, err)

	_, err = ComposeSection(already, 0x9900)
	var alreadyErr *AlreadyUniversalHexError
	assert.ErrorAs(t, err, &alreadyErr)

	_, err = ComposeBlock(already, 0x9900)
	assert.ErrorAs(t, err, &alreadyErr)
}

func TestComposeRejectsTrailingRecords(t *testing.T) {
	withTrailer := ":10000000000102030405060708090A0B0C0D0E0F74\n:00000001FF\n:10000000000102030405060708090A0B0C0D0E0F74\n"

	_, err := ComposeSection(withTrailer, 0x9900)
	var trailingErr *TrailingRecordsAfterEOFError
	assert.ErrorAs(t, err, &trailingErr)
}

func TestComposeNonV1BoardRelabelsData(t *testing.T) {
	got, err := ComposeSection(singleRecordHex, 0x9903)
	require.NoError(t, err)
	assert.NotContains(t, got, ":10000000000102030405060708090A0B0C0D0E0F74")
	assert.Contains(t, got, ":1000000D")
}

func TestComposeV1BoardKeepsData(t *testing.T) {
	got, err := ComposeSection(singleRecordHex, 0x9900)
	require.NoError(t, err)
	assert.Contains(t, got, ":10000000000102030405060708090A0B0C0D0E0F74")
}

func TestComposeUppercaseNoCarriageReturn(t *testing.T) {
	got, err := ComposeSection(singleRecordHex, 0x9900)
	require.NoError(t, err)

	assert.NotContains(t, got, "\r")
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.Equal(t, strings.ToUpper(line), line)
	}
}

func TestComposeBlockAlignmentAcrossMultipleBlocks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString(":10000000000102030405060708090A0B0C0D0E0F74\n")
	}
	b.WriteString(":00000001FF\n")

	got, err := ComposeBlock(b.String(), 0x9903)
	require.NoError(t, err)

	nonTerminalBlockEnd := ihex.BlockEndRecord(12) + "\n"
	idx := strings.Index(got, nonTerminalBlockEnd)
	require.GreaterOrEqual(t, idx, 0)
	boundary := idx + len(nonTerminalBlockEnd)
	assert.Equal(t, 0, boundary%BlockSize)
}
