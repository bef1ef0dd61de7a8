package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/services"
	"github.com/rafabene/workout-api/internal/testutil"
)

var _ = Describe("CategoryService", func() {
	var (
		ctx     context.Context
		service *services.CategoryService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := testutil.NewDB(GinkgoT())
		service = services.NewCategoryService(postgres.NewCategoryRepository(db), testutil.NewLogger())
	})

	It("cria, busca e lista categorias", func() {
		created, err := service.CreateCategory(ctx, "Scale")
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).NotTo(BeEmpty())

		found, err := service.GetCategory(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("Scale"))

		all, err := service.ListCategories(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})

	It("sinaliza nome duplicado", func() {
		_, err := service.CreateCategory(ctx, "Scale")
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CreateCategory(ctx, "Scale")
		Expect(err).To(MatchError(domainerrors.ErrDuplicate))

		domainErr := domainError(err)
		Expect(domainErr.Message).To(Equal("error.category.duplicate_name"))
		Expect(domainErr.Params).To(HaveKeyWithValue("Name", "Scale"))
	})

	It("retorna not found para id inexistente", func() {
		_, err := service.GetCategory(ctx, "5f0c7a3e-6d1f-4f4e-9a55-0b1e7b7c1d2e")
		Expect(err).To(MatchError(domainerrors.ErrCategoryNotFound))
	})
})
