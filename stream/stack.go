package stream

import "github.com/openairsync/wbxml/token"

// frame is one currently open tag context. Frames form a strict LIFO
// nesting: an end token always closes the most recently pushed unmatched
// frame. The name is resolved once at push time and is diagnostic only.
type frame struct {
	id         token.TagID
	name       string
	hasContent bool
}

type tagStack struct {
	frames []frame
}

func (s *tagStack) depth() int {
	return len(s.frames)
}

func (s *tagStack) top() (frame, bool) {
	if len(s.frames) == 0 {
		return frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *tagStack) push(f frame) {
	s.frames = append(s.frames, f)
}

// pop removes and returns the frame being closed. ok is false when no
// frame is open, which callers report as malformed nesting.
func (s *tagStack) pop() (frame, bool) {
	n := len(s.frames)
	if n == 0 {
		return frame{}, false
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f, true
}
