package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"clinica_odonto/internal/domain/cards"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrInvalidCardData      = errors.New("invalid card data")
	ErrInvalidCardAmount    = errors.New("invalid card payment amount")
	ErrInvalidInstallments  = errors.New("installment count not offered")
	ErrInvalidCardPaymentID = errors.New("invalid card payment id")
	ErrCardPaymentNotFound  = errors.New("card payment not found")
	ErrCardGatewayFailed    = errors.New("card payment could not be processed")
	ErrUnsupportedCardBrand = errors.New("unsupported card brand")
)

// CardValidationError lists the rejected form fields with a user-facing
// message each. errors.Is(err, ErrInvalidCardData) holds for it.
type CardValidationError struct {
	Fields map[string]string
}

func (e *CardValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidCardData, strings.Join(names, ", "))
}

func (e *CardValidationError) Is(target error) bool {
	return target == ErrInvalidCardData
}

// CardData is the raw card form. Number and CVV never leave this process
// except towards the gateway and are never persisted.
type CardData struct {
	Number     string `json:"number" validate:"required,card_digits,luhn"`
	HolderName string `json:"holder_name" validate:"required,min=3,max=100,holder_name"`
	Expiry     string `json:"expiry" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	Document   string `json:"document" validate:"required,tax_document"`
	Email      string `json:"email" validate:"required,email"`
	Token      string `json:"token"`
}

type ProcessCardCommand struct {
	Card          CardData
	Amount        float64
	Installments  int
	PlanReference string
	BrandID       entities.CardBrandID
	Description   string
}

// CardCheck is the inline form feedback for a card number.
type CardCheck struct {
	Valid     bool
	Brand     *entities.CardBrandDescriptor
	Formatted string
}

type ICardPaymentUseCase interface {
	ProcessPayment(ctx context.Context, cmd ProcessCardCommand) (entities.CardPayment, error)
	GetHistory(ctx context.Context) ([]entities.CardPayment, error)
	GetByID(ctx context.Context, id string) (entities.CardPayment, error)
	Quote(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentOption, error)
	ValidateCard(number string) CardCheck
	Brands() []entities.CardBrandDescriptor
}

type CardPaymentSettings struct {
	NotificationRecipient string
	// RequireCardToken is set when charges go to a real acquirer, which
	// only accepts tokenized cards.
	RequireCardToken      bool
}

type CardPaymentUseCase struct {
	repo     interfaces.ICardPaymentRepository
	gateway  interfaces.ICardGateway
	pricer   IInstallmentPricer
	notifier interfaces.INotifier
	clock    interfaces.IClock
	logger   *zap.Logger
	settings CardPaymentSettings
	validate *validator.Validate
	ids      millisSequence
}

var _ ICardPaymentUseCase = (*CardPaymentUseCase)(nil)

var taxDocumentLengths = map[int]bool{11: true, 14: true}

const (
	minCardDigits = 13
	maxCardDigits = 19
)

var holderNameRegex = regexp.MustCompile(`^[\p{L}\s'.-]+$`)

func NewCardPaymentUseCase(
	repo interfaces.ICardPaymentRepository,
	gateway interfaces.ICardGateway,
	pricer IInstallmentPricer,
	notifier interfaces.INotifier,
	clock interfaces.IClock,
	logger *zap.Logger,
	settings CardPaymentSettings,
) *CardPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &CardPaymentUseCase{
		repo:     repo,
		gateway:  gateway,
		pricer:   pricer,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		settings: settings,
	}
	u.validate = u.newValidator()
	return u
}

func (u *CardPaymentUseCase) newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return cards.ValidateCardNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("card_digits", func(fl validator.FieldLevel) bool {
		n := len(cards.CleanDigits(fl.Field().String()))
		return n >= minCardDigits && n <= maxCardDigits
	})
	_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return cards.ValidateExpiry(fl.Field().String(), u.clock.Now())
	})
	_ = v.RegisterValidation("tax_document", func(fl validator.FieldLevel) bool {
		return taxDocumentLengths[len(cards.CleanDigits(fl.Field().String()))]
	})
	_ = v.RegisterValidation("holder_name", func(fl validator.FieldLevel) bool {
		return holderNameRegex.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (u *CardPaymentUseCase) validateCard(card CardData) *CardValidationError {
	card.HolderName = strings.TrimSpace(card.HolderName)
	card.Email = strings.TrimSpace(card.Email)
	err := u.validate.Struct(card)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = cardFieldMessage(fe)
			}
		}
	} else {
		fields["card"] = "Dados do cartão inválidos."
	}
	return &CardValidationError{Fields: fields}
}

func cardFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "luhn":
		return "Número do cartão inválido."
	case "card_digits":
		return fmt.Sprintf("O número do cartão deve ter entre %d e %d dígitos.", minCardDigits, maxCardDigits)
	case "card_expiry":
		return "Validade inválida ou vencida (MM/AA)."
	case "numeric", "min", "max":
		if fe.Field() == "cvv" {
			return "CVV deve ter 3 ou 4 dígitos."
		}
		if fe.Tag() == "min" {
			return fmt.Sprintf("Mínimo de %s caracteres.", fe.Param())
		}
		if fe.Tag() == "max" {
			return fmt.Sprintf("Máximo de %s caracteres.", fe.Param())
		}
		return "Informe apenas números."
	case "holder_name":
		return "Use apenas letras no nome do titular."
	case "tax_document":
		return "CPF ou CNPJ inválido."
	case "email":
		return "E-mail inválido."
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}

func (u *CardPaymentUseCase) ProcessPayment(ctx context.Context, cmd ProcessCardCommand) (entities.CardPayment, error) {
	plan := strings.TrimSpace(cmd.PlanReference)
	if plan == "" {
		return entities.CardPayment{}, ErrInvalidPlanReference
	}
	if !validAmount(cmd.Amount) {
		return entities.CardPayment{}, ErrInvalidCardAmount
	}
	amount := roundCents(cmd.Amount)

	if verr := u.validateCard(cmd.Card); verr != nil {
		u.logger.Info("[card][usecase] card data rejected", zap.String("card", cards.MaskCardNumber(cmd.Card.Number)), zap.Any("fields", verr.Fields))
		return entities.CardPayment{}, verr
	}
	if u.settings.RequireCardToken && strings.TrimSpace(cmd.Card.Token) == "" {
		u.logger.Info("[card][usecase] card token missing", zap.String("card", cards.MaskCardNumber(cmd.Card.Number)))
		return entities.CardPayment{}, &CardValidationError{Fields: map[string]string{"token": "Cartão não tokenizado. Recarregue a página e tente novamente."}}
	}

	brand, err := u.resolveBrand(cmd.BrandID, cmd.Card.Number)
	if err != nil {
		return entities.CardPayment{}, err
	}

	count := cmd.Installments
	if count == 0 {
		count = 1
	}
	options, err := u.pricer.Quote(ctx, amount, brand.ID)
	if err != nil {
		return entities.CardPayment{}, err
	}
	option, ok := findInstallment(options, count)
	if !ok {
		return entities.CardPayment{}, ErrInvalidInstallments
	}

	id := fmt.Sprintf("cart_test_%d", u.ids.next(u.clock.Now()))
	log := u.logger.With(zap.String("payment_id", id), zap.String("plan", plan), zap.String("brand", string(brand.ID)))
	log.Info("[card][usecase] process start",
		zap.String("card", cards.MaskCardNumber(cmd.Card.Number)),
		zap.Float64("amount", amount),
		zap.Int("installments", count),
	)

	holder := entities.Cardholder{
		Name:     strings.TrimSpace(cmd.Card.HolderName),
		Document: cards.CleanDigits(cmd.Card.Document),
		Email:    strings.TrimSpace(cmd.Card.Email),
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf("Plano %s", plan)
	}

	charge, err := u.gateway.Charge(ctx, interfaces.CardChargeRequest{
		Reference:    id,
		Amount:       amount,
		Installments: count,
		Brand:        brand.ID,
		Description:  description,
		Card: interfaces.CardCredentials{
			Number: cards.CleanDigits(cmd.Card.Number),
			CVV:    strings.TrimSpace(cmd.Card.CVV),
			Expiry: cards.FormatExpiry(cmd.Card.Expiry),
			Token:  strings.TrimSpace(cmd.Card.Token),
		},
		Payer: holder,
	})
	if err != nil {
		if isContextError(ctx, err) {
			log.Info("[card][usecase] process abandoned", zap.Error(err))
			return entities.CardPayment{}, err
		}
		log.Error("[card][usecase] gateway charge failed", zap.Error(err))
		return entities.CardPayment{}, ErrCardGatewayFailed
	}

	reference := charge.TransactionReference
	if reference == "" {
		reference = "mp_test_" + randomSuffix(16)
	}

	p := entities.CardPayment{
		ID:                   id,
		Amount:               amount,
		InstallmentCount:     option.Count,
		InstallmentAmount:    option.InstallmentAmount,
		TotalAmount:          option.TotalAmount,
		Brand:                brand.ID,
		Status:               charge.Status,
		Cardholder:           holder,
		ProcessingFeeRate:    entities.CardProcessingFeeRate,
		NetAmount:            roundCents(amount * (1 - entities.CardProcessingFeeRate)),
		TransactionReference: reference,
		PlanReference:        plan,
		CreatedAt:            u.clock.Now(),
	}
	if err := u.repo.Save(ctx, p); err != nil {
		log.Error("[card][usecase] repository save failed", zap.Error(err))
		return entities.CardPayment{}, storeError(err)
	}
	log.Info("[card][usecase] process finished", zap.String("status", string(p.Status)), zap.String("transaction_reference", p.TransactionReference))

	u.notifyOutcome(ctx, p)
	return p, nil
}

// resolveBrand detects the brand from the number prefix. An explicit brand
// must be supported and agree with the detected one.
func (u *CardPaymentUseCase) resolveBrand(id entities.CardBrandID, number string) (*entities.CardBrandDescriptor, error) {
	detected := cards.IdentifyBrand(number)
	id = normalizeBrandID(id)
	if id != "" {
		b := entities.LookupCardBrand(id)
		if b == nil {
			return nil, &CardValidationError{Fields: map[string]string{"brand": "Bandeira não suportada."}}
		}
		if detected == nil || detected.ID != b.ID {
			return nil, &CardValidationError{Fields: map[string]string{"brand": "Bandeira não corresponde ao número do cartão."}}
		}
		return b, nil
	}
	if detected == nil {
		return nil, &CardValidationError{Fields: map[string]string{"number": "Bandeira do cartão não reconhecida."}}
	}
	return detected, nil
}

func normalizeBrandID(id entities.CardBrandID) entities.CardBrandID {
	return entities.CardBrandID(strings.ToLower(strings.TrimSpace(string(id))))
}

func (u *CardPaymentUseCase) notifyOutcome(ctx context.Context, p entities.CardPayment) {
	if u.notifier == nil {
		return
	}
	var (
		kind    entities.NotificationKind
		message string
	)
	switch p.Status {
	case entities.CardStatusApproved:
		kind = entities.NotificationSuccess
		message = fmt.Sprintf("Pagamento no cartão de %s aprovado para o plano %s (transação %s)", formatBRL(p.Amount), p.PlanReference, p.ID)
	case entities.CardStatusRejected:
		kind = entities.NotificationError
		message = fmt.Sprintf("Pagamento no cartão de %s recusado (transação %s)", formatBRL(p.Amount), p.ID)
	case entities.CardStatusInProcess:
		kind = entities.NotificationInfo
		message = fmt.Sprintf("Pagamento no cartão de %s em análise (transação %s)", formatBRL(p.Amount), p.ID)
	default:
		return
	}
	n := entities.Notification{
		Recipient: u.settings.NotificationRecipient,
		Message:   message,
		Kind:      kind,
		PaymentID: p.ID,
		CreatedAt: u.clock.Now(),
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("[card][usecase] notification failed", zap.String("payment_id", p.ID), zap.Error(err))
	}
}

func (u *CardPaymentUseCase) GetHistory(ctx context.Context) ([]entities.CardPayment, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		u.logger.Error("[card][usecase] repository list failed", zap.Error(err))
		return nil, storeError(err)
	}
	return items, nil
}

func (u *CardPaymentUseCase) GetByID(ctx context.Context, id string) (entities.CardPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CardPayment{}, ErrInvalidCardPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CardPayment{}, storeError(err)
	}
	if p.ID == "" {
		return entities.CardPayment{}, ErrCardPaymentNotFound
	}
	return p, nil
}

func (u *CardPaymentUseCase) Quote(ctx context.Context, amount float64, brand entities.CardBrandID) ([]entities.InstallmentOption, error) {
	brand = normalizeBrandID(brand)
	if brand != "" && entities.LookupCardBrand(brand) == nil {
		return nil, ErrUnsupportedCardBrand
	}
	return u.pricer.Quote(ctx, amount, brand)
}

func (u *CardPaymentUseCase) ValidateCard(number string) CardCheck {
	return CardCheck{
		Valid:     cards.ValidateCardNumber(number),
		Brand:     cards.IdentifyBrand(number),
		Formatted: cards.FormatCardNumber(number),
	}
}

func (u *CardPaymentUseCase) Brands() []entities.CardBrandDescriptor {
	return entities.CardBrands()
}
