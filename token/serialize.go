package token

import "io"

// Serialize walks the list head to tail, writing each token's effective
// text in turn (spec §4.8). EOF emits nothing.
func Serialize(w io.Writer, l *List) error {
	for t := l.First(); t != nil; t = t.Next {
		if t.Kind == EOF {
			continue
		}
		if _, err := w.Write(t.Effective()); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the same bytes Serialize would write, for callers that just
// want a slice. It returns nil when the list renders to nothing.
func Render(l *List) []byte {
	var buf []byte
	for t := l.First(); t != nil; t = t.Next {
		if t.Kind == EOF {
			continue
		}
		buf = append(buf, t.Effective()...)
	}
	return buf
}
