package repositories

import (
	"testing"

	"github.com/amars11/ExpenseTracker/internal/database"
	"github.com/amars11/ExpenseTracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := &models.Category{
		Name: "Groceries",
		Type: models.CategoryTypeExpense,
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create_DuplicateName() {
	s.NoError(s.repo.Create(&models.Category{Name: "Rent", Type: models.CategoryTypeExpense}))

	err := s.repo.Create(&models.Category{Name: "Rent", Type: models.CategoryTypeExpense})
	s.Equal(ErrCategoryAlreadyExists, err)

	var count int64
	s.NoError(s.db.Model(&models.Category{}).Where("name = ?", "Rent").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByName() {
	created := database.CreateTestCategory(s.T(), s.db, "Utilities", models.CategoryTypeExpense)

	category, err := s.repo.GetByName("Utilities")
	s.NoError(err)
	s.Equal(created.ID, category.ID)

	// Lookup trims surrounding whitespace
	category, err = s.repo.GetByName("  Utilities  ")
	s.NoError(err)
	s.Equal(created.ID, category.ID)

	_, err = s.repo.GetByName("Missing")
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByID() {
	created := database.CreateTestCategory(s.T(), s.db, "Salary", models.CategoryTypeIncome)

	category, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("Salary", category.Name)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_ListByType() {
	database.CreateTestCategory(s.T(), s.db, "Salary", models.CategoryTypeIncome)
	database.CreateTestCategory(s.T(), s.db, "Groceries", models.CategoryTypeExpense)
	database.CreateTestCategory(s.T(), s.db, "Dining", models.CategoryTypeExpense)

	expenses, err := s.repo.ListByType(models.CategoryTypeExpense)
	s.NoError(err)
	s.Len(expenses, 2)
	for _, c := range expenses {
		s.Equal(models.CategoryTypeExpense, c.Type)
	}

	income, err := s.repo.ListByType(models.CategoryTypeIncome)
	s.NoError(err)
	s.Len(income, 1)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_ListAll() {
	database.CreateTestCategory(s.T(), s.db, "Zoo Trips", models.CategoryTypeExpense)
	database.CreateTestCategory(s.T(), s.db, "Art Supplies", models.CategoryTypeExpense)

	categories, err := s.repo.ListAll()
	s.NoError(err)
	s.Len(categories, 2)
	// Alphabetical ordering
	s.Equal("Art Supplies", categories[0].Name)
	s.Equal("Zoo Trips", categories[1].Name)
}
