package focus

const opToggleInert = "toggleInert"

// Attribute names touched by ToggleInert. AttrSavedTabIndex holds the
// tabindex seen before opening (empty when there was none) and marks the
// element as opened; AttrSavedInert records that it was inert already.
const (
	AttrInert         = "inert"
	AttrTabIndex      = "tabindex"
	AttrSavedTabIndex = "data-inert-tabindex"
	AttrSavedInert    = "data-inert-prior"
)

// Element is a UI node with string attributes.
type Element interface {
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// InertProperty is implemented by elements exposing a native inert
// property. ToggleInert prefers it over the attribute.
type InertProperty interface {
	SetInert(inert bool)
}

// InertState reports the native inert property.
type InertState interface {
	Inert() bool
}

// ToggleInert marks el non-interactive and unreachable by Tab when open is
// true and reverses both when false. A nil el is a no-op. Opening records
// the prior tabindex and inert state, so closing puts both back; repeated
// opens keep the first record. Closing an element that was never opened
// clears inert and tabindex.
func (m *Manager) ToggleInert(el Element, open bool) error {
	m.logger.Debug().Str("op", opToggleInert).Bool("open", open).Msg("running")

	if isNil(el) {
		m.logger.Debug().Str("op", opToggleInert).Msg("returning")
		return nil
	}

	if open {
		openInert(el)
	} else {
		closeInert(el)
	}

	m.logger.Debug().Str("op", opToggleInert).Msg("returning")
	return nil
}

func openInert(el Element) {
	if _, opened := el.GetAttribute(AttrSavedTabIndex); !opened {
		if isInert(el) {
			el.SetAttribute(AttrSavedInert, "")
		}
		prev, _ := el.GetAttribute(AttrTabIndex)
		el.SetAttribute(AttrSavedTabIndex, prev)
	}
	setInert(el, true)
	el.SetAttribute(AttrTabIndex, "-1")
}

func closeInert(el Element) {
	prev, opened := el.GetAttribute(AttrSavedTabIndex)
	_, wasInert := el.GetAttribute(AttrSavedInert)

	setInert(el, opened && wasInert)
	if opened && prev != "" {
		el.SetAttribute(AttrTabIndex, prev)
	} else {
		el.RemoveAttribute(AttrTabIndex)
	}
	el.RemoveAttribute(AttrSavedTabIndex)
	el.RemoveAttribute(AttrSavedInert)
}

func isInert(el Element) bool {
	if native, ok := el.(InertState); ok {
		return native.Inert()
	}
	_, ok := el.GetAttribute(AttrInert)
	return ok
}

func setInert(el Element, inert bool) {
	if native, ok := el.(InertProperty); ok {
		native.SetInert(inert)
		return
	}
	if inert {
		el.SetAttribute(AttrInert, "")
		return
	}
	el.RemoveAttribute(AttrInert)
}
