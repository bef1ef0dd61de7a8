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

var _ = Describe("TrainingCenterService", func() {
	var (
		ctx     context.Context
		service *services.TrainingCenterService
		input   services.CreateTrainingCenterInput
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := testutil.NewDB(GinkgoT())
		service = services.NewTrainingCenterService(postgres.NewTrainingCenterRepository(db), testutil.NewLogger())
		input = services.CreateTrainingCenterInput{Name: "CT King", Address: "Rua X, Q02", Owner: "Marcos"}
	})

	It("cria e busca um centro de treinamento", func() {
		created, err := service.CreateTrainingCenter(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		found, err := service.GetTrainingCenter(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name).To(Equal("CT King"))
		Expect(found.Address).To(Equal("Rua X, Q02"))
		Expect(found.Owner).To(Equal("Marcos"))

		all, err := service.ListTrainingCenters(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})

	It("sinaliza nome duplicado", func() {
		_, err := service.CreateTrainingCenter(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CreateTrainingCenter(ctx, input)
		Expect(err).To(MatchError(domainerrors.ErrDuplicate))
		Expect(domainError(err).Message).To(Equal("error.training_center.duplicate_name"))
	})

	It("retorna not found para id malformado", func() {
		_, err := service.GetTrainingCenter(ctx, "nao-e-uuid")
		Expect(err).To(MatchError(domainerrors.ErrTrainingCenterNotFound))
	})
})
