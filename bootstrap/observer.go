package bootstrap

// Observer receives progress from a seed run. The core never prints; a console
// observer lives in internal/report.
type Observer interface {
	CollectionChecked(name string, created bool)
	CollectionCleared(name string, deleted int64)
	AssistantsCreated(n int)
	CentersCreated(n int)
}

type nopObserver struct{}

func (nopObserver) CollectionChecked(string, bool)  {}
func (nopObserver) CollectionCleared(string, int64) {}
func (nopObserver) AssistantsCreated(int)           {}
func (nopObserver) CentersCreated(int)              {}

func observerOrNop(obs Observer) Observer {
	if obs == nil {
		return nopObserver{}
	}
	return obs
}
