package settings

import "github.com/rs/zerolog/log"

// outputStyleKey is the host setting naming the active presentation style.
const outputStyleKey = "outputStyle"

// OutputStyle reads the active style name. ok is false when the key is
// absent, meaning the host default is in effect.
func (f *File) OutputStyle() (name string, ok bool, err error) {
	doc, err := f.Load()
	if err != nil {
		return "", false, err
	}
	name, ok = doc[outputStyleKey].(string)
	return name, ok, nil
}

// SetOutputStyle points the host at the named style.
func (f *File) SetOutputStyle(name string) error {
	doc, err := f.Load()
	if err != nil {
		return err
	}
	doc[outputStyleKey] = name
	if err := f.Save(doc); err != nil {
		return err
	}
	log.Debug().Str("style", name).Msg("Activated output style")
	return nil
}

// ClearOutputStyle removes the key entirely, restoring the host default.
// Clearing an absent key is a no-op that skips the write.
func (f *File) ClearOutputStyle() error {
	doc, err := f.Load()
	if err != nil {
		return err
	}
	if _, ok := doc[outputStyleKey]; !ok {
		return nil
	}
	delete(doc, outputStyleKey)
	return f.Save(doc)
}
