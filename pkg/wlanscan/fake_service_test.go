package wlanscan

import (
	"sync"
	"syscall"
	"testing"

	ole "github.com/go-ole/go-ole"
)

// fakeService is an in-memory Service with fault injection at every call site and
// acquire/release counters for the session and every list it hands out
type fakeService struct {
	t *testing.T

	openErr error
	session *fakeSession
	opens   int
}

func (fs *fakeService) Open() (Session, error) {
	fs.opens++
	if fs.openErr != nil {
		return nil, fs.openErr
	}

	return fs.session, nil
}

type fakeSession struct {
	t *testing.T

	interfaces []Interface
	networks   map[ole.GUID][]Network

	registerErr   error
	interfacesErr error
	scanErr       map[ole.GUID]error
	networksErr   map[ole.GUID]error

	// onScan runs after a successful scan request, with the registered handler (nil if none)
	onScan func(id ole.GUID, handler NotificationHandler)

	mu            sync.Mutex
	handler       NotificationHandler
	registrations int
	enumerations  int
	scans         []ole.GUID
	queries       []ole.GUID
	closes        int

	acquired int
	freed    int
}

func newFakeSession(t *testing.T, interfaces ...Interface) *fakeSession {
	return &fakeSession{
		t:           t,
		interfaces:  interfaces,
		networks:    map[ole.GUID][]Network{},
		scanErr:     map[ole.GUID]error{},
		networksErr: map[ole.GUID]error{},
	}
}

func (s *fakeSession) RegisterNotification(handler NotificationHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registrations++
	if s.registerErr != nil {
		return s.registerErr
	}

	s.handler = handler
	return nil
}

func (s *fakeSession) Interfaces() (InterfaceList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enumerations++
	if s.interfacesErr != nil {
		return nil, s.interfacesErr
	}

	s.acquired++
	return &fakeList[Interface]{session: s, items: s.interfaces}, nil
}

func (s *fakeSession) Scan(id ole.GUID) error {
	s.mu.Lock()
	s.scans = append(s.scans, id)
	err := s.scanErr[id]
	handler := s.handler
	s.mu.Unlock()

	if err != nil {
		return err
	}

	if s.onScan != nil {
		s.onScan(id, handler)
	}

	return nil
}

func (s *fakeSession) AvailableNetworks(id ole.GUID) (NetworkList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, id)
	if err := s.networksErr[id]; err != nil {
		return nil, err
	}

	s.acquired++
	return &fakeList[Network]{session: s, items: s.networks[id]}, nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closes++
	if s.closes > 1 {
		s.t.Errorf("session closed %d times", s.closes)
	}

	return nil
}

func (s *fakeSession) assertReleased() {
	s.t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acquired != s.freed {
		s.t.Errorf("acquired %d lists, freed %d", s.acquired, s.freed)
	}

	if s.closes != 1 {
		s.t.Errorf("session closed %d times, want 1", s.closes)
	}
}

type fakeList[T any] struct {
	session *fakeSession
	items   []T
	freed   bool
}

func (l *fakeList[T]) Items() []T {
	if l.freed {
		l.session.t.Errorf("list used after free")
	}

	return l.items
}

func (l *fakeList[T]) Free() {
	l.session.mu.Lock()
	defer l.session.mu.Unlock()

	if l.freed {
		l.session.t.Errorf("list freed twice")
		return
	}

	l.freed = true
	l.session.freed++
}

func statusErr(op string, code uint32) error {
	return newStatusError(op, syscall.Errno(code))
}

func testGUID(t *testing.T, s string) ole.GUID {
	t.Helper()

	guid := ole.NewGUID(s)
	if guid == nil {
		t.Fatalf("invalid guid %q", s)
	}

	return *guid
}
