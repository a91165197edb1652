package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/ports"
)

const (
	newFileMode    os.FileMode = 0o644
	lockRetryDelay             = 20 * time.Millisecond
)

// EventStore keeps the event table in a single CSV file with a header row.
// Appends rewrite the whole file through a temp file + rename. Writers are
// serialised by a mutex within the process and by an flock on "<path>.lock"
// across processes, so the server and the CLI can share one file.
type EventStore struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

func NewEventStore(path string) *EventStore {
	return &EventStore{path: path, lock: flock.New(path + ".lock")}
}

var (
	_ ports.EventStorePort = (*EventStore)(nil)
	_ ports.BatchAppender  = (*EventStore)(nil)
)

func (s *EventStore) Path() string { return s.path }

func (s *EventStore) Load(ctx context.Context) (domain.EventTable, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.loadLocked()
}

func (s *EventStore) Append(ctx context.Context, e domain.UsageEvent) error {
	return s.AppendAll(ctx, []domain.UsageEvent{e})
}

// AppendAll adds events with a single rewrite of the file.
func (s *EventStore) AppendAll(ctx context.Context, events []domain.UsageEvent) error {
	if len(events) == 0 {
		return ctx.Err()
	}

	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	table, err := s.loadLocked()
	if err != nil {
		return err
	}

	table = append(table, events...)
	return s.writeLocked(table)
}

// acquire takes the process mutex, then the file lock.
func (s *EventStore) acquire(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s.mu.Lock()
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		s.mu.Unlock()
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("lock event table: %w", err)
	}

	return func() {
		_ = s.lock.Unlock()
		s.mu.Unlock()
	}, nil
}

func (s *EventStore) loadLocked() (domain.EventTable, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.writeLocked(domain.EventTable{}); err != nil {
			return nil, err
		}
		return domain.EventTable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open event table: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func (s *EventStore) writeLocked(table domain.EventTable) error {
	dir := filepath.Dir(s.path)

	// A new table gets 0644 minus the umask, like any created file; an
	// existing table keeps its mode across the rename.
	tmpName := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpName, os.O_RDWR|os.O_CREATE|os.O_EXCL, newFileMode)
	if err != nil {
		return fmt.Errorf("create temp table: %w", err)
	}
	if st, err := os.Stat(s.path); err == nil {
		if err := tmp.Chmod(st.Mode().Perm()); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("chmod temp table: %w", err)
		}
	}

	if err := encode(tmp, table); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp table: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace event table: %w", err)
	}
	return syncDir(dir)
}

// syncDir makes the rename durable. Windows cannot fsync a directory.
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync data dir: %w", err)
	}
	return nil
}

func encode(w io.Writer, table domain.EventTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range table {
		if err := cw.Write(toRecord(e)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decode(r io.Reader) (domain.EventTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(domain.Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.ParseError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}
	for i, col := range domain.Columns {
		if header[i] != col {
			return nil, &domain.ParseError{
				Line: 1,
				Err:  fmt.Errorf("column %d is %q, expected %q", i+1, header[i], col),
			}
		}
	}

	table := domain.EventTable{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		line, _ := cr.FieldPos(0)

		e, err := fromRecord(line, rec)
		if err != nil {
			return nil, err
		}
		table = append(table, e)
	}

	return table, nil
}

func toRecord(e domain.UsageEvent) []string {
	return []string{
		e.TaskDescription,
		e.AiTool,
		strconv.FormatFloat(e.TimeSpentOnAi, 'f', -1, 64),
		strconv.Itoa(e.CreativityImpact),
		strconv.FormatFloat(e.TimeSaved, 'f', -1, 64),
		strconv.Itoa(e.SkillDevelopmentImpact),
		string(e.TaskCompletion),
	}
}

func fromRecord(line int, rec []string) (domain.UsageEvent, error) {
	e := domain.UsageEvent{
		TaskDescription: rec[0],
		AiTool:          rec[1],
	}

	var err error
	if e.TimeSpentOnAi, err = parseFloat(rec[2]); err != nil {
		return e, &domain.ParseError{Line: line, Column: domain.Columns[2], Err: err}
	}
	if e.CreativityImpact, err = parseInt(rec[3]); err != nil {
		return e, &domain.ParseError{Line: line, Column: domain.Columns[3], Err: err}
	}
	if e.TimeSaved, err = parseFloat(rec[4]); err != nil {
		return e, &domain.ParseError{Line: line, Column: domain.Columns[4], Err: err}
	}
	if e.SkillDevelopmentImpact, err = parseInt(rec[5]); err != nil {
		return e, &domain.ParseError{Line: line, Column: domain.Columns[5], Err: err}
	}
	if e.TaskCompletion, err = domain.ParseTaskCompletion(rec[6]); err != nil {
		return e, &domain.ParseError{Line: line, Column: domain.Columns[6], Err: err}
	}

	return e, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseInt also accepts integral floats ("4.0"), which dataframe writers
// emit for rating columns.
func parseInt(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}

func wrapCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &domain.ParseError{Line: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("read event table: %w", err)
}
