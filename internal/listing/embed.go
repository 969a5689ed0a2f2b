package listing

import "fmt"

// Embedded player heights differ by kind: collections get the tall
// player with the track list visible, single works the compact one.
const (
	embedAlbumTemplate = `<iframe style="border: 0; width: 100%%; height: 472px;" src="https://bandcamp.com/EmbeddedPlayer/album=%s/size=large/bgcol=ffffff/linkcol=0687f5/artwork=small/transparent=true/" seamless><a href="https://bandcamp.com/album/%s">%s by %s</a></iframe>`
	embedTrackTemplate = `<iframe style="border: 0; width: 100%%; height: 120px;" src="https://bandcamp.com/EmbeddedPlayer/track=%s/size=large/bgcol=ffffff/linkcol=0687f5/tracklist=false/artwork=small/transparent=true/" seamless><a href="https://bandcamp.com/track/%s">%s by %s</a></iframe>`
)

// EmbedMarkup renders the embedded player iframe for a release. The
// fallback anchor carries "<title> by <artist>" and links the canonical
// release page. Pure function of its inputs; no parsing involved.
func EmbedMarkup(isAlbum bool, itemID, title, artist string) string {
	tmpl := embedTrackTemplate
	if isAlbum {
		tmpl = embedAlbumTemplate
	}
	return fmt.Sprintf(tmpl, itemID, itemID, title, artist)
}
