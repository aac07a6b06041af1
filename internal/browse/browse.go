package browse

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/five82/marquee/internal/mylist"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
)

// Tab identifies a top-level view.
type Tab string

const (
	TabHome   Tab = "home"
	TabTV     Tab = "tv"
	TabMovies Tab = "movies"
	TabNew    Tab = "new"
	TabMyList Tab = "mylist"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabHome, TabTV, TabMovies, TabNew, TabMyList}

// Label returns the tab's display name.
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Home"
	case TabTV:
		return "TV Shows"
	case TabMovies:
		return "Movies"
	case TabNew:
		return "New & Popular"
	case TabMyList:
		return "My List"
	default:
		return string(t)
	}
}

// ParseTab resolves a tab name, reporting false for unknown values.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return TabHome, false
}

// SearchDelay is how long the query must stay unchanged before a search
// request is issued.
const SearchDelay = 350 * time.Millisecond

// User-facing notices.
const (
	NoticeNoTrailer     = "No trailer available for this title."
	NoticeTrailerFailed = "Could not load trailer."
	NoticeListFailed    = "Could not update My List."
)

// ViewState is the UI-facing state. It is only mutated on the UI loop.
type ViewState struct {
	Tab Tab

	SearchOpen  bool
	DetailOpen  bool
	TrailerOpen bool
	ProfileOpen bool
	MenuOpen    bool

	Selected   *tmdb.Title
	Detail     *tmdb.Details
	TrailerURL string

	SearchQuery   string
	SearchResults []tmdb.Title
	Searching     bool

	Loading bool
	Err     string
	Notice  string
}

// Browser coordinates catalog loads, the saved list, and overlay state.
type Browser struct {
	catalog tmdb.Catalog
	list    *mylist.Store
	log     *slog.Logger

	view    ViewState
	shelves state.Store
	myList  []tmdb.Title

	loadGen    uint64
	cancelLoad context.CancelFunc

	searchGen    uint64
	cancelSearch context.CancelFunc

	detailGen uint64
	playGen   uint64
}

// New returns a Browser on the home tab. A nil logger discards output.
func New(catalog tmdb.Catalog, list *mylist.Store, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := &Browser{
		catalog: catalog,
		list:    list,
		log:     logger,
		view:    ViewState{Tab: TabHome},
	}
	b.refreshMyList()
	return b
}

// View returns a copy of the current view state.
func (b *Browser) View() ViewState {
	v := b.view
	if v.Selected != nil {
		sel := *v.Selected
		v.Selected = &sel
	}
	if v.Detail != nil {
		d := *v.Detail
		v.Detail = &d
	}
	v.SearchResults = append([]tmdb.Title(nil), v.SearchResults...)
	return v
}

// Shelves returns the shelf snapshot for tab.
func (b *Browser) Shelves(tab Tab) state.Snapshot {
	return b.shelves.Snapshot(string(tab))
}

// Featured returns the active tab's featured title, if any.
func (b *Browser) Featured() *tmdb.Title {
	if b.view.Tab == TabMyList {
		return nil
	}
	return b.shelves.Snapshot(string(b.view.Tab)).Featured
}

// MyList returns the in-memory mirror of the saved list.
func (b *Browser) MyList() []tmdb.Title {
	return append([]tmdb.Title(nil), b.myList...)
}

// InMyList reports whether title is saved.
func (b *Browser) InMyList(title tmdb.Title) bool {
	key := title.Key()
	for _, t := range b.myList {
		if t.Key() == key {
			return true
		}
	}
	return false
}

// ToggleMyList adds or removes title and refreshes every view that shows
// the list. It reports whether the title is saved afterwards.
func (b *Browser) ToggleMyList(title tmdb.Title) (bool, error) {
	saved, list, err := b.list.Toggle(title)
	b.myList = list
	b.syncMyListShelf()
	if err != nil {
		b.log.Warn("my list update failed", "id", title.ID, "media_type", title.Kind(), "error", err)
		b.view.Notice = NoticeListFailed
		return saved, err
	}
	b.log.Debug("my list updated", "id", title.ID, "media_type", title.Kind(), "saved", saved)
	return saved, nil
}

func (b *Browser) refreshMyList() {
	b.myList = b.list.List()
	b.syncMyListShelf()
}

func (b *Browser) syncMyListShelf() {
	b.shelves.Replace(string(TabMyList), state.Shelf{Name: ShelfMyList, Titles: b.myList})
}

// ToggleProfile opens or closes the profile dropdown.
func (b *Browser) ToggleProfile() {
	b.view.ProfileOpen = !b.view.ProfileOpen
	if b.view.ProfileOpen {
		b.view.MenuOpen = false
	}
}

// ToggleMenu opens or closes the tab menu.
func (b *Browser) ToggleMenu() {
	b.view.MenuOpen = !b.view.MenuOpen
	if b.view.MenuOpen {
		b.view.ProfileOpen = false
	}
}

// CloseTrailer hides the trailer overlay.
func (b *Browser) CloseTrailer() {
	b.view.TrailerOpen = false
	b.view.TrailerURL = ""
	b.playGen++
}

// CloseDetail hides the detail overlay.
func (b *Browser) CloseDetail() {
	b.view.DetailOpen = false
	b.detailGen++
}

// CloseOverlays closes every overlay.
func (b *Browser) CloseOverlays() {
	b.CloseSearch()
	b.CloseDetail()
	b.CloseTrailer()
	b.view.ProfileOpen = false
	b.view.MenuOpen = false
}

// DismissNotice clears the transient notice.
func (b *Browser) DismissNotice() {
	b.view.Notice = ""
}

// Close cancels in-flight work.
func (b *Browser) Close() {
	if b.cancelLoad != nil {
		b.cancelLoad()
		b.cancelLoad = nil
	}
	if b.cancelSearch != nil {
		b.cancelSearch()
		b.cancelSearch = nil
	}
}
