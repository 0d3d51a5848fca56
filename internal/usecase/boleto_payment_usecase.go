package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"clinica_odonto/internal/domain/boleto"
	"clinica_odonto/internal/domain/cards"
	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidBoletoAmount    = errors.New("invalid boleto amount")
	ErrInvalidBoletoPayer     = errors.New("invalid boleto payer")
	ErrInvalidBoletoPaymentID = errors.New("invalid boleto payment id")
	ErrBoletoNotFound         = errors.New("boleto not found")
	ErrBoletoGenerationFailed = errors.New("boleto generation failed")
)

// boletoIssueDelay stands in for the issuing bank round-trip.
const boletoIssueDelay = time.Second

type IBoletoPaymentUseCase interface {
	Generate(ctx context.Context, cmd GenerateBoletoCommand) (entities.BoletoPayment, error)
	CheckStatus(ctx context.Context, id string) (entities.BoletoStatus, error)
	List(ctx context.Context) ([]entities.BoletoPayment, error)
	GetByID(ctx context.Context, id string) (entities.BoletoPayment, error)
	Render(ctx context.Context, id string) ([]byte, error)
}

type GenerateBoletoCommand struct {
	PlanReference string
	Amount        float64
	Description   string
	PayerName     string
	PayerDocument string
}

// BoletoSettings are the beneficiary descriptors printed on every slip.
type BoletoSettings struct {
	BankCode              string
	BeneficiaryName       string
	BeneficiaryDocument   string
	NotificationRecipient string
}

type BoletoPaymentUseCase struct {
	repo     interfaces.IBoletoPaymentRepository
	notifier interfaces.INotifier
	clock    interfaces.IClock
	logger   *zap.Logger
	settings BoletoSettings
	ids      millisSequence
}

var _ IBoletoPaymentUseCase = (*BoletoPaymentUseCase)(nil)

func NewBoletoPaymentUseCase(
	repo interfaces.IBoletoPaymentRepository,
	notifier interfaces.INotifier,
	clock interfaces.IClock,
	logger *zap.Logger,
	settings BoletoSettings,
) *BoletoPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoletoPaymentUseCase{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		settings: settings,
	}
}

func (u *BoletoPaymentUseCase) Generate(ctx context.Context, cmd GenerateBoletoCommand) (entities.BoletoPayment, error) {
	plan := strings.TrimSpace(cmd.PlanReference)
	if plan == "" {
		return entities.BoletoPayment{}, ErrInvalidPlanReference
	}
	if !validAmount(cmd.Amount) {
		return entities.BoletoPayment{}, ErrInvalidBoletoAmount
	}
	payerName := strings.TrimSpace(cmd.PayerName)
	payerDocument := cards.CleanDigits(cmd.PayerDocument)
	if payerName == "" || !taxDocumentLengths[len(payerDocument)] {
		return entities.BoletoPayment{}, ErrInvalidBoletoPayer
	}
	amount := roundCents(cmd.Amount)
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = fmt.Sprintf("Plano %s", plan)
	}

	seq := u.ids.next(u.clock.Now())
	id := fmt.Sprintf("BOL_%d", seq)
	u.logger.Info("[boleto][usecase] generate start", zap.String("payment_id", id), zap.String("plan", plan), zap.Float64("amount", amount))

	if err := u.clock.Sleep(ctx, boletoIssueDelay); err != nil {
		u.logger.Info("[boleto][usecase] generate abandoned", zap.String("payment_id", id), zap.Error(err))
		return entities.BoletoPayment{}, err
	}

	now := u.clock.Now()
	y, m, d := now.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, entities.BoletoDueDays)

	code, err := boleto.Generate(boleto.Params{
		BankCode:  u.settings.BankCode,
		Amount:    amount,
		DueDate:   due,
		FreeField: fmt.Sprint(seq),
	})
	if err != nil {
		u.logger.Error("[boleto][usecase] barcode failed", zap.String("payment_id", id), zap.Error(err))
		return entities.BoletoPayment{}, ErrBoletoGenerationFailed
	}

	p := entities.BoletoPayment{
		ID:                  id,
		Amount:              amount,
		Description:         description,
		PlanReference:       plan,
		PayerName:           payerName,
		PayerDocument:       payerDocument,
		BeneficiaryName:     u.settings.BeneficiaryName,
		BeneficiaryDocument: u.settings.BeneficiaryDocument,
		BankCode:            u.settings.BankCode,
		Barcode:             code.Code,
		DigitableLine:       code.DigitableLine,
		Status:              entities.BoletoStatusPendente,
		DueDate:             due,
		CreatedAt:           now,
	}
	if err := u.repo.Save(ctx, p); err != nil {
		u.logger.Error("[boleto][usecase] repository save failed", zap.String("payment_id", id), zap.Error(err))
		return entities.BoletoPayment{}, storeError(err)
	}
	u.logger.Info("[boleto][usecase] generate success", zap.String("payment_id", id), zap.Time("due_date", due))
	return p, nil
}

// CheckStatus marks a pending slip as vencido once its due date has passed.
func (u *BoletoPaymentUseCase) CheckStatus(ctx context.Context, id string) (entities.BoletoStatus, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidBoletoPaymentID
	}

	now := u.clock.Now()
	updated, changed, err := u.repo.Update(ctx, id, func(cur entities.BoletoPayment) (entities.BoletoPayment, bool) {
		if cur.Status != entities.BoletoStatusPendente || now.Before(cur.DueDate.AddDate(0, 0, 1)) {
			return cur, false
		}
		cur.Status = entities.BoletoStatusVencido
		return cur, true
	})
	if err != nil {
		u.logger.Error("[boleto][usecase] repository update failed", zap.String("payment_id", id), zap.Error(err))
		return "", storeError(err)
	}
	if updated.ID == "" {
		return "", ErrBoletoNotFound
	}
	if changed {
		u.logger.Info("[boleto][usecase] boleto overdue", zap.String("payment_id", id))
		if u.notifier != nil {
			n := entities.Notification{
				Recipient: u.settings.NotificationRecipient,
				Message:   fmt.Sprintf("Boleto %s de %s venceu sem pagamento", updated.ID, formatBRL(updated.Amount)),
				Kind:      entities.NotificationWarning,
				PaymentID: updated.ID,
				CreatedAt: now,
			}
			if err := u.notifier.Notify(ctx, n); err != nil {
				u.logger.Warn("[boleto][usecase] notification failed", zap.String("payment_id", id), zap.Error(err))
			}
		}
	}
	return updated.Status, nil
}

func (u *BoletoPaymentUseCase) List(ctx context.Context) ([]entities.BoletoPayment, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		u.logger.Error("[boleto][usecase] repository list failed", zap.Error(err))
		return nil, storeError(err)
	}
	return items, nil
}

func (u *BoletoPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BoletoPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BoletoPayment{}, ErrInvalidBoletoPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BoletoPayment{}, storeError(err)
	}
	if p.ID == "" {
		return entities.BoletoPayment{}, ErrBoletoNotFound
	}
	return p, nil
}

// Render returns the printable HTML slip.
func (u *BoletoPaymentUseCase) Render(ctx context.Context, id string) ([]byte, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := boletoTemplate.Execute(&buf, boletoView{
		BoletoPayment: p,
		AmountText:    formatBRL(p.Amount),
		DueDateText:   p.DueDate.Format("02/01/2006"),
		IssuedText:    p.CreatedAt.Format("02/01/2006"),
		Document:      formatTaxDocument(p.PayerDocument),
		Beneficiary:   formatTaxDocument(p.BeneficiaryDocument),
	}); err != nil {
		u.logger.Error("[boleto][usecase] render failed", zap.String("payment_id", p.ID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

type boletoView struct {
	entities.BoletoPayment
	AmountText  string
	DueDateText string
	IssuedText  string
	Document    string
	Beneficiary string
}

func formatTaxDocument(doc string) string {
	switch len(doc) {
	case 11:
		return doc[:3] + "." + doc[3:6] + "." + doc[6:9] + "-" + doc[9:]
	case 14:
		return doc[:2] + "." + doc[2:5] + "." + doc[5:8] + "/" + doc[8:12] + "-" + doc[12:]
	}
	return doc
}

var boletoTemplate = template.Must(template.New("boleto").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Boleto {{.ID}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; }
table { border-collapse: collapse; width: 100%; }
td { border: 1px solid #333; padding: 6px; font-size: 12px; vertical-align: top; }
.label { display: block; font-size: 9px; color: #555; }
.line { font-family: monospace; font-size: 16px; text-align: right; }
.barcode { font-family: monospace; letter-spacing: 2px; padding: 12px 0; }
.notice { color: #a00; font-size: 11px; }
</style>
</head>
<body>
<p class="notice">Documento de simulação. Não possui valor bancário.</p>
<table>
<tr><td colspan="3"><strong>{{.BankCode}}-9</strong> <span class="line">{{.DigitableLine}}</span></td></tr>
<tr>
<td colspan="2"><span class="label">Beneficiário</span>{{.BeneficiaryName}} - {{.Beneficiary}}</td>
<td><span class="label">Vencimento</span>{{.DueDateText}}</td>
</tr>
<tr>
<td><span class="label">Data do documento</span>{{.IssuedText}}</td>
<td><span class="label">Nosso número</span>{{.ID}}</td>
<td><span class="label">Valor do documento</span>{{.AmountText}}</td>
</tr>
<tr><td colspan="3"><span class="label">Descrição</span>{{.Description}} ({{.PlanReference}})</td></tr>
<tr><td colspan="3"><span class="label">Pagador</span>{{.PayerName}} - {{.Document}}</td></tr>
</table>
<div class="barcode">{{.Barcode}}</div>
</body>
</html>
`))
