package carrier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/internal/common"
)

func TestDetectMaersk(t *testing.T) {
	text := `Maersk Point-to-point results
VESSEL/VOYAGE
SPIL NISAKA / 602N
ETD: 16 Jan 2026, 19:00
ETA: 24 Jan 2026, 22:00`

	p, err := NewRegistry().Detect(text)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, constants.Maersk, p.Name())
}

func TestDetectOOCL(t *testing.T) {
	text := `OOCL sailing schedule
COSCO PRIDE 067E
CY Cut-off: 7 Jan 23:00
Laden pickup: 5 Jan 08:00`

	p, err := NewRegistry().Detect(text)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, constants.OOCL, p.Name())
}

func TestDetectAmbiguousIsAnError(t *testing.T) {
	// One signature hit each: a tie that must never be silently guessed.
	text := "transshipment via OOCL feeder, booking with CMA pending"

	p, err := NewRegistry().Detect(text)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAmbiguousCarrier))
}

func TestDetectUndetermined(t *testing.T) {
	p, err := NewRegistry().Detect("nothing recognizable in here")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestByName(t *testing.T) {
	r := NewRegistry()

	p, err := r.ByName("maersk")
	require.NoError(t, err)
	assert.Equal(t, constants.Maersk, p.Name())

	p, err = r.ByName("CMA-CGM")
	require.NoError(t, err)
	assert.Equal(t, constants.CMACGM, p.Name())

	_, err = r.ByName("acme shipping")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))

	// Known carrier without a dedicated layout.
	_, err = r.ByName("evergreen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFromFilename(t *testing.T) {
	c, ok := FromFilename("m_schedule_20260115.txt")
	require.True(t, ok)
	assert.Equal(t, constants.Maersk, c)

	c, ok = FromFilename("/drops/c_cnc_jakarta.txt")
	require.True(t, ok)
	assert.Equal(t, constants.CMACGM, c)

	_, ok = FromFilename("schedule.txt")
	assert.False(t, ok)

	_, ok = FromFilename("q_unknown_prefix.txt")
	assert.False(t, ok)
}
