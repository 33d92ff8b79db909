package fixtures

import (
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"flight-report/pkg/apperr"
)

// Store is a file-per-combination cache of raw search responses. Files are
// plain JSON so an operator can inspect or hand-edit them between a capture
// run and a replay run.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Key builds the canonical fixture key for one search combination.
func Key(origin, destination, depDate, retDate string) string {
	name := origin + "_" + destination + "_" + depDate
	if retDate != "" {
		name += "_ret_" + retDate
	}
	return name
}

func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the raw cached response body. A missing fixture yields a
// not_found error instructing the operator to capture first.
func (s *Store) Load(key string) ([]byte, error) {
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.New(apperr.CodeNotFound,
				"no fixture at "+path+"; run once with SAVE_FIXTURES=1 to capture real responses")
		}
		return nil, pkgerrors.Wrapf(err, "read fixture %s", path)
	}
	return data, nil
}

func (s *Store) Save(key string, body []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return pkgerrors.Wrapf(err, "create fixtures dir %s", s.dir)
	}
	path := s.Path(key)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return pkgerrors.Wrapf(err, "write fixture %s", path)
	}
	return nil
}
