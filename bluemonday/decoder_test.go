package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/linkpreview"
	"github.com/fwojciec/linkpreview/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes named character references", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		assert.Equal(t, "Hello & World", d.Decode("Hello &amp; World"))
	})

	t.Run("decodes numeric character references", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		assert.Equal(t, "it's", d.Decode("it&#39;s"))
	})

	t.Run("strips embedded markup", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		assert.Equal(t, "bold and plain", d.Decode("<b>bold</b> and plain"))
	})

	t.Run("strips markup before decoding references", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		// The encoded tag must come out as literal text.
		assert.Equal(t, "<b>not a tag</b>", d.Decode("&lt;b&gt;not a tag&lt;/b&gt;"))
	})

	t.Run("passes plain text through unchanged", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		assert.Equal(t, "plain text", d.Decode("plain text"))
	})

	t.Run("decodes og content values during extraction", func(t *testing.T) {
		t.Parallel()

		e := linkpreview.NewExtractor(bluemonday.NewDecoder())
		og := e.Extract(`<meta property="og:title" content="Hello &amp; World"/>`)

		title, ok := og.Title()
		require.True(t, ok)
		assert.Equal(t, "Hello & World", title)
	})

	t.Run("never fails on malformed input", func(t *testing.T) {
		t.Parallel()

		d := bluemonday.NewDecoder()

		assert.NotPanics(t, func() {
			d.Decode("<a href=\"unterminated")
			d.Decode("&#xZZ; &unknown; <<>>")
			d.Decode("")
		})
	})
}
