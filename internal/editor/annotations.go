//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

// Error markers and breakpoints are keyed by 1-based line numbers,
// matching how humans read diagnostics (spec.md §4.6). The buffer
// itself is 0-based; this file is the only place that does the
// translation, by design (spec.md §9 open question: don't normalize).

func (e *Editor) lineInRange(line int) bool {
	return line >= 1 && line <= e.buffer.LineCount()
}

// AddErrorMarker appends message to line's marker, or rejects the call if
// line is out of range (invariant A1).
func (e *Editor) AddErrorMarker(line int, message string) bool {
	if !e.lineInRange(line) {
		return false
	}
	if existing, ok := e.errorMarkers[line]; ok {
		e.errorMarkers[line] = existing + "\n" + message
	} else {
		e.errorMarkers[line] = message
	}
	return true
}

// SetErrorMarkers replaces the whole error-marker map. If any key is out
// of range the whole call is rejected, keeping invariant A1 intact.
func (e *Editor) SetErrorMarkers(markers map[int]string) bool {
	for line := range markers {
		if !e.lineInRange(line) {
			return false
		}
	}
	m := make(map[int]string, len(markers))
	for k, v := range markers {
		m[k] = v
	}
	e.errorMarkers = m
	return true
}

// ErrorMarkers returns a copy of the current error-marker map.
func (e *Editor) ErrorMarkers() map[int]string {
	m := make(map[int]string, len(e.errorMarkers))
	for k, v := range e.errorMarkers {
		m[k] = v
	}
	return m
}

// ClearErrorMarkers removes every error marker.
func (e *Editor) ClearErrorMarkers() {
	e.errorMarkers = map[int]string{}
}

// AddBreakpoint sets a breakpoint on line, rejecting out-of-range lines
// (invariant A2).
func (e *Editor) AddBreakpoint(line int) bool {
	if !e.lineInRange(line) {
		return false
	}
	e.breakpoints[line] = struct{}{}
	return true
}

// RemoveBreakpoint clears a breakpoint on line.
func (e *Editor) RemoveBreakpoint(line int) bool {
	if !e.lineInRange(line) {
		return false
	}
	delete(e.breakpoints, line)
	return true
}

// ToggleBreakpoint flips the breakpoint state of line.
func (e *Editor) ToggleBreakpoint(line int) bool {
	if !e.lineInRange(line) {
		return false
	}
	if _, ok := e.breakpoints[line]; ok {
		delete(e.breakpoints, line)
	} else {
		e.breakpoints[line] = struct{}{}
	}
	return true
}

// SetBreakpoints replaces the whole breakpoint set, rejecting the call
// entirely if any element is out of range.
func (e *Editor) SetBreakpoints(lines map[int]struct{}) bool {
	for line := range lines {
		if !e.lineInRange(line) {
			return false
		}
	}
	m := make(map[int]struct{}, len(lines))
	for k := range lines {
		m[k] = struct{}{}
	}
	e.breakpoints = m
	return true
}

// Breakpoints returns a copy of the current breakpoint set.
func (e *Editor) Breakpoints() map[int]struct{} {
	m := make(map[int]struct{}, len(e.breakpoints))
	for k := range e.breakpoints {
		m[k] = struct{}{}
	}
	return m
}

// shiftAnnotationsForInsert moves every annotation on or after the
// 0-based line `at` down by one, since a new line was inserted there.
func (e *Editor) shiftAnnotationsForInsert(at int) {
	oneBased := at + 1
	shifted := make(map[int]string, len(e.errorMarkers))
	for line, msg := range e.errorMarkers {
		if line >= oneBased {
			line++
		}
		shifted[line] = msg
	}
	e.errorMarkers = shifted

	shiftedBp := make(map[int]struct{}, len(e.breakpoints))
	for line := range e.breakpoints {
		if line >= oneBased {
			line++
		}
		shiftedBp[line] = struct{}{}
	}
	e.breakpoints = shiftedBp
}

// shiftAnnotationsForRemove drops annotations on removed 0-based lines
// [start, endExclusive) and shifts annotations after the range down by
// the number of lines removed.
func (e *Editor) shiftAnnotationsForRemove(start, endExclusive int) {
	removedCount := endExclusive - start
	oneStart := start + 1
	oneEnd := endExclusive + 1 // exclusive

	shifted := make(map[int]string, len(e.errorMarkers))
	for line, msg := range e.errorMarkers {
		switch {
		case line >= oneStart && line < oneEnd:
			// dropped
		case line >= oneEnd:
			shifted[line-removedCount] = msg
		default:
			shifted[line] = msg
		}
	}
	e.errorMarkers = shifted

	shiftedBp := make(map[int]struct{}, len(e.breakpoints))
	for line := range e.breakpoints {
		switch {
		case line >= oneStart && line < oneEnd:
		case line >= oneEnd:
			shiftedBp[line-removedCount] = struct{}{}
		default:
			shiftedBp[line] = struct{}{}
		}
	}
	e.breakpoints = shiftedBp
}

// migrateAnnotationsLine moves any annotation on 0-based line `from` onto
// 0-based line `to`, merging with whatever is already there. Used by
// Backspace/Delete's line-join before the joined-away line is removed
// with removeLinesAt, so its annotations move to the merge target rather
// than being dropped (spec.md §4.3 Backspace).
func (e *Editor) migrateAnnotationsLine(from, to int) {
	oneFrom, oneTo := from+1, to+1
	if msg, ok := e.errorMarkers[oneFrom]; ok {
		delete(e.errorMarkers, oneFrom)
		if existing, ok2 := e.errorMarkers[oneTo]; ok2 {
			e.errorMarkers[oneTo] = existing + "\n" + msg
		} else {
			e.errorMarkers[oneTo] = msg
		}
	}
	if _, ok := e.breakpoints[oneFrom]; ok {
		delete(e.breakpoints, oneFrom)
		e.breakpoints[oneTo] = struct{}{}
	}
}
