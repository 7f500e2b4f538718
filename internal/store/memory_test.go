package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fabiandarga/employee-import/internal/employee"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newRecord(firstName string) employee.Record {
	return employee.Record{
		FirstName: firstName,
		LastName:  "Tester",
		Birthday:  employee.Date{Time: time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)},
		Salary:    40000,
		Education: employee.EducationBachelor,
		Married:   false,
		Kids:      1,
	}
}

func (s *MemoryStoreSuite) TestInsertAssignsSequentialIDs() {
	id1, err := s.store.Insert(s.ctx, s.newRecord("Anna"))
	s.Require().NoError(err)
	id2, err := s.store.Insert(s.ctx, s.newRecord("Hans"))
	s.Require().NoError(err)

	s.Equal(int64(1), id1)
	s.Equal(int64(2), id2)

	rec, ok := s.store.Get(id1)
	s.Require().True(ok)
	s.Equal("Anna", rec.FirstName)
}

func (s *MemoryStoreSuite) TestInsertMany() {
	recs := []employee.Record{
		s.newRecord("Anna"),
		s.newRecord("Hans"),
		s.newRecord("Karl"),
	}

	ids, err := s.store.InsertMany(s.ctx, recs)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2, 3}, ids)

	all := s.store.All()
	s.Require().Len(all, 3)
	s.Equal("Anna", all[0].FirstName)
	s.Equal("Karl", all[2].FirstName)
}

func (s *MemoryStoreSuite) TestInsertManyEmpty() {
	ids, err := s.store.InsertMany(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(ids)
	s.Empty(s.store.All())
}

func (s *MemoryStoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}
