package sphere

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// ErrNoVertices is returned for an OBJ stream without geometric vertices.
var ErrNoVertices = errors.New("no vertices")

// ReadOBJBounds scans a Wavefront OBJ stream and returns the bounding box
// of its geometric vertices ("v" lines). Every other statement is ignored.
func ReadOBJBounds(r io.Reader) (math32.Box3, error) {
	box := math32.B3Empty()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "v" {
			continue
		}
		if len(fields) < 4 {
			return math32.Box3{}, fmt.Errorf("line %d: less than 3 coordinates in 'v' line", line)
		}
		var p [3]float32
		for i, f := range fields[1:4] {
			val, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return math32.Box3{}, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = float32(val)
		}
		box.ExpandByPoint(math32.Vec3(p[0], p[1], p[2]))
	}
	if err := sc.Err(); err != nil {
		return math32.Box3{}, err
	}
	if box.IsEmpty() {
		return math32.Box3{}, ErrNoVertices
	}
	return box, nil
}
