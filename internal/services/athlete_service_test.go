package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/services"
	"github.com/rafabene/workout-api/internal/testutil"
)

// blindAthleteRepository esconde atletas existentes das verificações prévias,
// simulando duas criações concorrentes que passam pelas checagens ao mesmo tempo.
type blindAthleteRepository struct {
	repositories.AthleteRepository
}

func (r *blindAthleteRepository) FindByCPF(context.Context, string) (*entities.Athlete, error) {
	return nil, nil
}

func (r *blindAthleteRepository) FindByName(context.Context, string) (*entities.Athlete, error) {
	return nil, nil
}

// failingAthleteRepository falha em toda escrita com um erro inesperado
type failingAthleteRepository struct {
	repositories.AthleteRepository
	err error
}

func (r *failingAthleteRepository) Create(context.Context, *entities.Athlete) error {
	return r.err
}

func validInput() services.CreateAthleteInput {
	return services.CreateAthleteInput{
		Name:               "Joao",
		CPF:                "12345678901",
		Age:                25,
		Weight:             75.5,
		Height:             1.70,
		Sex:                "M",
		CategoryName:       "Scale",
		TrainingCenterName: "CT King",
	}
}

func ptr[T any](v T) *T {
	return &v
}

func domainError(err error) *domainerrors.DomainError {
	var domainErr *domainerrors.DomainError
	Expect(errors.As(err, &domainErr)).To(BeTrue(), "esperava DomainError, obteve %v", err)
	return domainErr
}

var _ = Describe("AthleteService", func() {
	var (
		ctx         context.Context
		athleteRepo repositories.AthleteRepository
		service     *services.AthleteService
		newService  func(repositories.AthleteRepository) *services.AthleteService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := testutil.NewDB(GinkgoT())
		logger := testutil.NewLogger()

		categoryRepo := postgres.NewCategoryRepository(db)
		trainingCenterRepo := postgres.NewTrainingCenterRepository(db)
		uow := postgres.NewUnitOfWork(db)
		athleteRepo = postgres.NewAthleteRepository(db)

		Expect(categoryRepo.Create(ctx, entities.NewCategory("Scale"))).To(Succeed())
		Expect(categoryRepo.Create(ctx, entities.NewCategory("RX"))).To(Succeed())
		Expect(trainingCenterRepo.Create(ctx, entities.NewTrainingCenter("CT King", "Rua X, Q02", "Marcos"))).To(Succeed())

		newService = func(repo repositories.AthleteRepository) *services.AthleteService {
			return services.NewAthleteService(repo, categoryRepo, trainingCenterRepo, uow, logger)
		}
		service = newService(athleteRepo)
	})

	Describe("CreateAthlete", func() {
		It("cria atletas distintos com identificadores distintos", func() {
			first, err := service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Name = "Maria"
			input.CPF = "10987654321"
			second, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).NotTo(BeEmpty())
			Expect(second.ID).NotTo(Equal(first.ID))
			Expect(first.CreatedAt.IsZero()).To(BeFalse())
			Expect(first.CategoryName()).To(Equal("Scale"))
			Expect(first.TrainingCenterName()).To(Equal("CT King"))
		})

		It("normaliza CPF com pontuação", func() {
			input := validInput()
			input.CPF = "123.456.789-01"

			athlete, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(athlete.CPF.String()).To(Equal("12345678901"))
		})

		It("rejeita categoria inexistente citando o nome", func() {
			input := validInput()
			input.CategoryName = "Peso Pesado"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrRelatedNotFound))

			domainErr := domainError(err)
			Expect(domainErr.Message).To(Equal("error.athlete.category_not_found"))
			Expect(domainErr.Params).To(HaveKeyWithValue("Name", "Peso Pesado"))
		})

		It("rejeita centro de treinamento inexistente", func() {
			input := validInput()
			input.TrainingCenterName = "CT Queen"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrRelatedNotFound))
			Expect(domainError(err).Message).To(Equal("error.athlete.training_center_not_found"))
		})

		It("verifica a categoria antes do CPF duplicado", func() {
			_, err := service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.CategoryName = "Inexistente"
			_, err = service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrRelatedNotFound))
		})

		It("rejeita CPF duplicado sem criar segundo registro", func() {
			_, err := service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Name = "Maria"
			_, err = service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrDuplicate))

			domainErr := domainError(err)
			Expect(domainErr.Message).To(Equal("error.athlete.duplicate_cpf"))
			Expect(domainErr.Params).To(HaveKeyWithValue("CPF", "12345678901"))

			all, err := service.ListAthletes(ctx, repositories.AthleteFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("rejeita nome duplicado", func() {
			_, err := service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.CPF = "10987654321"
			_, err = service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrDuplicate))
			Expect(domainError(err).Message).To(Equal("error.athlete.duplicate_name"))
		})

		It("rejeita CPF com formato inválido", func() {
			input := validInput()
			input.CPF = "123"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(err).To(MatchError(domainerrors.ErrInvalidCPF))
		})

		Context("quando as verificações prévias não veem o conflito", func() {
			It("classifica a violação de CPF reportada pelo banco", func() {
				_, err := service.CreateAthlete(ctx, validInput())
				Expect(err).NotTo(HaveOccurred())

				racing := newService(&blindAthleteRepository{AthleteRepository: athleteRepo})
				input := validInput()
				input.Name = "Maria"
				_, err = racing.CreateAthlete(ctx, input)

				Expect(err).To(MatchError(domainerrors.ErrDuplicate))
				Expect(domainError(err).Message).To(Equal("error.athlete.duplicate_cpf"))
			})

			It("classifica a violação de nome reportada pelo banco", func() {
				_, err := service.CreateAthlete(ctx, validInput())
				Expect(err).NotTo(HaveOccurred())

				racing := newService(&blindAthleteRepository{AthleteRepository: athleteRepo})
				input := validInput()
				input.CPF = "10987654321"
				_, err = racing.CreateAthlete(ctx, input)

				Expect(err).To(MatchError(domainerrors.ErrDuplicate))
				Expect(domainError(err).Message).To(Equal("error.athlete.duplicate_name"))
			})
		})

		It("repassa erros inesperados sem classificá-los", func() {
			boom := errors.New("connection reset")
			failing := newService(&failingAthleteRepository{AthleteRepository: athleteRepo, err: boom})

			_, err := failing.CreateAthlete(ctx, validInput())
			Expect(err).To(MatchError(boom))

			var domainErr *domainerrors.DomainError
			Expect(errors.As(err, &domainErr)).To(BeFalse())
		})
	})

	Describe("UpdateAthlete", func() {
		var existing *entities.Athlete

		BeforeEach(func() {
			var err error
			existing, err = service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("altera somente os campos enviados", func() {
			updated, err := service.UpdateAthlete(ctx, existing.ID, services.UpdateAthleteInput{Age: ptr(30)})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Age).To(Equal(30))
			Expect(updated.Name).To(Equal("Joao"))
			Expect(updated.CPF.String()).To(Equal("12345678901"))
			Expect(updated.Weight).To(Equal(75.5))
			Expect(updated.Height).To(Equal(1.70))
			Expect(updated.Sex).To(Equal("M"))
			Expect(updated.CategoryName()).To(Equal("Scale"))
			Expect(updated.TrainingCenterName()).To(Equal("CT King"))
		})

		It("troca a categoria pelo nome", func() {
			updated, err := service.UpdateAthlete(ctx, existing.ID, services.UpdateAthleteInput{CategoryName: ptr("RX")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.CategoryName()).To(Equal("RX"))
		})

		It("rejeita categoria inexistente", func() {
			_, err := service.UpdateAthlete(ctx, existing.ID, services.UpdateAthleteInput{CategoryName: ptr("Nada")})
			Expect(err).To(MatchError(domainerrors.ErrRelatedNotFound))
		})

		It("retorna not found para id inexistente", func() {
			_, err := service.UpdateAthlete(ctx, "5f0c7a3e-6d1f-4f4e-9a55-0b1e7b7c1d2e", services.UpdateAthleteInput{Age: ptr(30)})
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))
			Expect(domainerrors.IsNotFound(err)).To(BeTrue())
		})

		It("classifica CPF duplicado na atualização", func() {
			input := validInput()
			input.Name = "Maria"
			input.CPF = "10987654321"
			other, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateAthlete(ctx, other.ID, services.UpdateAthleteInput{CPF: ptr("12345678901")})
			Expect(err).To(MatchError(domainerrors.ErrDuplicate))

			domainErr := domainError(err)
			Expect(domainErr.Message).To(Equal("error.athlete.duplicate_cpf"))
			Expect(domainErr.Params).To(HaveKeyWithValue("CPF", "12345678901"))

			unchanged, err := service.GetAthlete(ctx, other.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(unchanged.CPF.String()).To(Equal("10987654321"))
		})
	})

	Describe("DeleteAthlete", func() {
		It("remove o atleta e GetAthlete passa a retornar not found", func() {
			athlete, err := service.CreateAthlete(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteAthlete(ctx, athlete.ID)).To(Succeed())

			_, err = service.GetAthlete(ctx, athlete.ID)
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))
		})

		It("retorna not found para id inexistente", func() {
			err := service.DeleteAthlete(ctx, "5f0c7a3e-6d1f-4f4e-9a55-0b1e7b7c1d2e")
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))
		})
	})

	Describe("ListAthletes", func() {
		BeforeEach(func() {
			for _, a := range []struct{ name, cpf string }{
				{"Joao", "12345678901"},
				{"Jorge", "22345678901"},
				{"Maria", "32345678901"},
			} {
				input := validInput()
				input.Name = a.name
				input.CPF = a.cpf
				_, err := service.CreateAthlete(ctx, input)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("filtra por nome parcial sem diferenciar maiúsculas", func() {
			athletes, err := service.ListAthletes(ctx, repositories.AthleteFilters{Name: "jo"})
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, 0, len(athletes))
			for _, a := range athletes {
				names = append(names, a.Name)
			}
			Expect(names).To(ConsistOf("Joao", "Jorge"))
		})

		It("aceita o filtro de CPF com a mesma pontuação usada no cadastro", func() {
			athletes, err := service.ListAthletes(ctx, repositories.AthleteFilters{CPF: "123.456"})
			Expect(err).NotTo(HaveOccurred())
			Expect(athletes).To(HaveLen(1))
			Expect(athletes[0].Name).To(Equal("Joao"))

			athletes, err = service.ListAthletes(ctx, repositories.AthleteFilters{CPF: "345.678.901"})
			Expect(err).NotTo(HaveOccurred())
			Expect(athletes).To(HaveLen(3))
		})
	})
})
