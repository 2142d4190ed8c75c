package hover

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mklettner/dropzone/pkg/errors"
)

// matrixFile is the TOML shape of a custom matrix definition file:
//
//	[matrix.narrow]
//	rows = [
//	  ["C1", "AA", "AA", "C2"],
//	  ["LA", "NO", "NO", "RA"],
//	  ["C4", "BA", "BA", "C3"],
//	]
//
// Zone codes are the two-letter shorthands of [ZoneClass.String].
type matrixFile struct {
	Matrix map[string]matrixDef `toml:"matrix"`
}

type matrixDef struct {
	Rows [][]string `toml:"rows"`
}

// LoadMatrixFile reads custom zone matrices from a TOML file. Every matrix
// is validated the same way [NewMatrix] validates literals; unknown zone
// codes and ragged grids fail with INVALID_MATRIX errors naming the
// offending matrix. The result is meant for [WithMatrices].
func LoadMatrixFile(path string) (map[string]Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "read matrix file %s", path)
	}
	return ParseMatrixTOML(data)
}

// ParseMatrixTOML parses TOML matrix definitions from memory. See
// [LoadMatrixFile] for the format.
func ParseMatrixTOML(data []byte) (map[string]Matrix, error) {
	var file matrixFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "parse matrix definitions")
	}
	if len(file.Matrix) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "no [matrix.<name>] tables found")
	}

	out := make(map[string]Matrix, len(file.Matrix))
	for name, def := range file.Matrix {
		rows := make([][]ZoneClass, len(def.Rows))
		for i, codes := range def.Rows {
			row := make([]ZoneClass, len(codes))
			for j, code := range codes {
				z, err := ParseZoneClass(code)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err,
						"matrix %q row %d cell %d", name, i, j)
				}
				row[j] = z
			}
			rows[i] = row
		}
		m, err := NewMatrix(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "matrix %q", name)
		}
		out[name] = m
	}
	return out, nil
}
