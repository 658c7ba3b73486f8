package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BrandNameRepoTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo *BrandNameRepository
}

func (s *BrandNameRepoTestSuite) SetupTest() {
	var err error
	s.db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	conn := postgres.NewConnectionWithDB(s.db, logging.NewNopLogger())
	s.repo = NewBrandNameRepository(conn, logging.NewNopLogger())
}

func (s *BrandNameRepoTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.db.Close()
}

func (s *BrandNameRepoTestSuite) TestUpsert() {
	s.mock.ExpectExec("INSERT INTO drug_brand_names").
		WithArgs("Metformin", `["Glucophage","Fortamet"]`, `["US","Global"]`, "DrugBank", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.repo.Upsert(context.Background(), enrich.BrandSeed{
		CanonicalName: "Metformin",
		BrandNames:    []string{"Glucophage", "Fortamet"},
		Regions:       []string{"US", "Global"},
		Source:        "DrugBank",
	})
	require.NoError(s.T(), err)
}

func (s *BrandNameRepoTestSuite) TestUpsert_RequiresName() {
	err := s.repo.Upsert(context.Background(), enrich.BrandSeed{})
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func (s *BrandNameRepoTestSuite) TestFindByDrug_Found() {
	s.mock.ExpectQuery("SELECT brand_names FROM drug_brand_names").
		WithArgs("Metformin").
		WillReturnRows(sqlmock.NewRows([]string{"brand_names"}).AddRow(`["Glucophage","Riomet"]`))

	names, found, err := s.repo.FindByDrug(context.Background(), "Metformin")
	require.NoError(s.T(), err)
	assert.True(s.T(), found)
	assert.Equal(s.T(), []string{"Glucophage", "Riomet"}, names)
}

func (s *BrandNameRepoTestSuite) TestFindByDrug_MissingRowIsNotFoundNotError() {
	s.mock.ExpectQuery("SELECT brand_names FROM drug_brand_names").
		WithArgs("Unobtainium").
		WillReturnError(sql.ErrNoRows)

	names, found, err := s.repo.FindByDrug(context.Background(), "Unobtainium")
	assert.NoError(s.T(), err)
	assert.False(s.T(), found)
	assert.Nil(s.T(), names)
}

func TestBrandNameRepoTestSuite(t *testing.T) {
	suite.Run(t, new(BrandNameRepoTestSuite))
}
