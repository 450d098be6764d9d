package accuracy

import (
	"encoding/binary"
	"sync"

	tmdb "github.com/tendermint/tm-db"
)

const (
	keyLatest = "latest"
	prefixRun = "run/"
)

// BaselineDB stores accuracy reports. The latest stored report is the
// baseline later runs are compared against; every stored report is also
// kept under its timestamp.
type BaselineDB struct {
	db tmdb.DB

	mtx sync.RWMutex
}

func OpenBaselineDB(name, dir string) (*BaselineDB, error) {
	// The returned 'db' instance is safe in concurrent use.
	db, err := tmdb.NewDB(name, "goleveldb", dir)
	if err != nil {
		return nil, err
	}
	return NewBaselineDB(db), nil
}

func NewBaselineDB(db tmdb.DB) *BaselineDB {
	return &BaselineDB{db: db}
}

func (bdb *BaselineDB) Close() error {
	bdb.mtx.Lock()
	defer bdb.mtx.Unlock()

	return bdb.db.Close()
}

// Latest returns the current baseline, or nil if none is stored.
func (bdb *BaselineDB) Latest() *Report {
	bdb.mtx.RLock()
	defer bdb.mtx.RUnlock()

	return bdb.getReport([]byte(keyLatest))
}

func (bdb *BaselineDB) Get(timestamp int64) *Report {
	bdb.mtx.RLock()
	defer bdb.mtx.RUnlock()

	return bdb.getReport(runKey(timestamp))
}

// Put stores rpt under its timestamp and makes it the baseline.
func (bdb *BaselineDB) Put(rpt *Report) error {
	bdb.mtx.Lock()
	defer bdb.mtx.Unlock()

	bz, err := rpt.Encode()
	if err != nil {
		return err
	}

	batch := bdb.db.NewBatch()
	defer batch.Close()

	if err := batch.Set(runKey(rpt.Timestamp), bz); err != nil {
		return err
	}
	if err := batch.Set([]byte(keyLatest), bz); err != nil {
		return err
	}
	return batch.WriteSync()
}

// History returns the timestamps of all stored reports, oldest first.
func (bdb *BaselineDB) History() ([]int64, error) {
	bdb.mtx.RLock()
	defer bdb.mtx.RUnlock()

	start := []byte(prefixRun)
	end := []byte(prefixRun)
	end[len(end)-1]++

	it, err := bdb.db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var ret []int64
	for ; it.Valid(); it.Next() {
		k := it.Key()
		ret = append(ret, int64(binary.BigEndian.Uint64(k[len(prefixRun):])))
	}
	return ret, it.Error()
}

func (bdb *BaselineDB) getReport(key []byte) *Report {
	bz, err := bdb.db.Get(key)
	if err != nil || bz == nil {
		return nil
	}
	rpt, err := DecodeReport(bz)
	if err != nil {
		return nil
	}
	return rpt
}

// runKey orders reports by timestamp. Timestamps are Unix seconds and
// never negative.
func runKey(timestamp int64) []byte {
	k := make([]byte, len(prefixRun)+8)
	copy(k, prefixRun)
	binary.BigEndian.PutUint64(k[len(prefixRun):], uint64(timestamp))
	return k
}
