package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/recordlist/listing"
)

const (
	StatusLoading   = "loading"
	StatusOperating = "operating"
	StatusFailed    = "failed"
)

// Service serialises access to one engine. Load only holds the lock while it
// installs the fetched records.
type Service struct {
	engine *listing.Engine
	source listing.Source
	mutex  *sync.Mutex
	status atomic.Value
}

func NewService(engine *listing.Engine, source listing.Source) *Service {
	s := &Service{
		engine: engine,
		source: source,
		mutex:  &sync.Mutex{},
	}
	s.status.Store(StatusLoading)
	return s
}

func (s *Service) Status() string {
	return s.status.Load().(string)
}

func (s *Service) Load(ctx context.Context) error {

	t0 := time.Now()
	snapshot, err := s.engine.Fetch(ctx, s.source)
	if errors.Is(err, listing.ErrLoadInProgress) {
		return err
	}
	if err != nil {
		log.Println("ERROR: load records:", err.Error(), time.Since(t0))
		if s.Status() == StatusLoading {
			s.status.Store(StatusFailed)
		}
		return err
	}

	s.mutex.Lock()
	s.engine.Commit(snapshot)
	s.mutex.Unlock()

	s.status.Store(StatusOperating)
	log.Println("loaded", snapshot.Len(), "records", time.Since(t0))

	return nil
}

func (s *Service) Page() listing.Page {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.engine.CurrentPageData()
}

func (s *Service) Settings() listing.Settings {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.engine.Settings()
}

func (s *Service) Search(query string) listing.Page {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.engine.SetSearch(query)
	return s.engine.CurrentPageData()
}

func (s *Service) Sort(field listing.SortField, order listing.SortOrder) (listing.Page, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.engine.SetSorting(field, order)
	if err != nil {
		return listing.Page{}, err
	}
	return s.engine.CurrentPageData(), nil
}

func (s *Service) SetPageSize(n int) (listing.Page, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.engine.SetPageSize(n)
	if err != nil {
		return listing.Page{}, err
	}
	return s.engine.CurrentPageData(), nil
}

func (s *Service) NextPage() listing.Page {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.engine.NextPage()
	return s.engine.CurrentPageData()
}

func (s *Service) PreviousPage() listing.Page {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.engine.PreviousPage()
	return s.engine.CurrentPageData()
}

func (s *Service) CreateRecord(title, body string) (listing.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.engine.AddRecord(title, body), nil
}

func (s *Service) GetRecord(id int) (listing.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	r, found := s.engine.GetRecord(id)
	if !found {
		return listing.Record{}, ErrorRecordNotFound
	}
	return r, nil
}

func (s *Service) UpdateRecord(id int, update listing.RecordUpdate) (listing.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.engine.UpdateRecord(id, update) {
		return listing.Record{}, ErrorRecordNotFound
	}
	r, _ := s.engine.GetRecord(id)
	return r, nil
}

func (s *Service) DeleteRecord(id int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.engine.DeleteRecord(id) {
		return ErrorRecordNotFound
	}
	return nil
}
