package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"calendarize/internal/event"
	"calendarize/pkg/dateparse"
	"calendarize/pkg/gcalendar"
	"calendarize/pkg/llmprovider"
	pkgLog "calendarize/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        llmprovider.Generator
	calendar   *gcalendar.Client // optional, may be nil
	resolver   *dateparse.Resolver
	timezone   string // default ambient timezone when the request has none
	calendarID string
	cache      *lru.Cache[string, event.ConvertOutput]
}

// New creates a new event UseCase instance. calendar may be nil when Google
// Calendar insertion is not configured. cacheSize <= 0 disables the
// extraction cache.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	calendar *gcalendar.Client,
	resolver *dateparse.Resolver,
	timezone string,
	calendarID string,
	cacheSize int,
) *implUseCase {
	var cache *lru.Cache[string, event.ConvertOutput]
	if cacheSize > 0 {
		cache, _ = lru.New[string, event.ConvertOutput](cacheSize)
	}

	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		resolver:   resolver,
		timezone:   timezone,
		calendarID: calendarID,
		cache:      cache,
	}
}
