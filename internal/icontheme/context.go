package icontheme

import (
	"strings"

	"github.com/deji/icon-lookup/internal/logger"
)

// Context is the kind of icons a theme directory holds
type Context int

const (
	ContextAny Context = iota
	ContextActions
	ContextAnimations
	ContextApplications
	ContextCategories
	ContextDevices
	ContextEmblems
	ContextEmotes
	ContextFileSystems
	ContextInternational
	ContextMimeTypes
	ContextPlaces
	ContextStatus
	ContextStock
	ContextMisc
)

var contextNames = map[Context]string{
	ContextAny:           "Any",
	ContextActions:       "Actions",
	ContextAnimations:    "Animations",
	ContextApplications:  "Applications",
	ContextCategories:    "Categories",
	ContextDevices:       "Devices",
	ContextEmblems:       "Emblems",
	ContextEmotes:        "Emotes",
	ContextFileSystems:   "FileSystems",
	ContextInternational: "International",
	ContextMimeTypes:     "MimeTypes",
	ContextPlaces:        "Places",
	ContextStatus:        "Status",
	ContextStock:         "Stock",
	ContextMisc:          "Misc",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "Unknown"
}

// LookupContext maps a context name, case-insensitively, to a Context
func LookupContext(name string) (Context, bool) {
	name = strings.TrimSpace(name)
	for ctx, n := range contextNames {
		if strings.EqualFold(n, name) {
			return ctx, true
		}
	}
	return ContextAny, false
}

// ParseContext is LookupContext for index.theme values: unknown names
// fall back to ContextAny.
func ParseContext(name string) Context {
	if name == "" {
		return ContextAny
	}
	ctx, ok := LookupContext(name)
	if !ok {
		logger.Warn("Unknown icon context '%s', defaulting to Any", name)
	}
	return ctx
}

// ContextNames lists every known context name except Any
func ContextNames() []string {
	names := make([]string, 0, len(contextNames)-1)
	for ctx := ContextActions; ctx <= ContextMisc; ctx++ {
		names = append(names, contextNames[ctx])
	}
	return names
}
