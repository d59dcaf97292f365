package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndTranslate(t *testing.T) {
	t.Cleanup(func() { _ = Load(DefaultLocale) })

	require.NoError(t, Load("tr"))
	assert.Equal(t, "Dosya çok büyük", T("file_too_large"))

	require.NoError(t, Load(""))
	assert.Equal(t, "File too large", T("file_too_large"))
	assert.Equal(t, "no_such_code", T("no_such_code"))

	assert.Error(t, Load("xx"))
	assert.Equal(t, "Upload failed", T("upload_failed"), "failed load keeps the previous table")
}
