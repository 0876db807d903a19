package gemini

import (
	"errors"
	"fmt"
)

// ErrNoResponse indicates the service returned nothing usable: no
// candidates at all.
var ErrNoResponse = errors.New("no valid response received from the model")

// BlockedError indicates the service refused the request on policy
// grounds before generating anything.
type BlockedError struct {
	Reason  string
	Message string
}

func (e *BlockedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request blocked: %s (%s)", e.Reason, e.Message)
	}
	return fmt.Sprintf("request blocked: %s", e.Reason)
}

// StoppedEarlyError indicates generation halted before producing an image,
// with the service's stop-reason code. Usually safety related.
type StoppedEarlyError struct {
	Reason string
}

func (e *StoppedEarlyError) Error() string {
	return fmt.Sprintf("image generation stopped early: %s", e.Reason)
}

// NoImageError indicates the service answered normally but with text only,
// no image part. Text carries whatever explanation the model gave.
type NoImageError struct {
	Text string
}

func (e *NoImageError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("model returned no image, replied with text: %q", e.Text)
	}
	return "model returned no image"
}

// MalformedTextError indicates a text-mode reply did not parse into the
// expected JSON shape for its mode.
type MalformedTextError struct {
	Mode string
	Err  error
}

func (e *MalformedTextError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Mode, e.Err)
}

func (e *MalformedTextError) Unwrap() error {
	return e.Err
}

// UserMessage translates a gateway error into the user-facing text shown
// in the error panel. Unclassified errors (transport failures and the
// like) fall through to a generic message.
func UserMessage(err error) string {
	var blocked *BlockedError
	if errors.As(err, &blocked) {
		msg := fmt.Sprintf("A solicitação foi bloqueada. Motivo: %s.", blocked.Reason)
		if blocked.Message != "" {
			msg += " " + blocked.Message
		}
		return msg
	}

	var stopped *StoppedEarlyError
	if errors.As(err, &stopped) {
		return fmt.Sprintf("A geração de imagem parou inesperadamente. Motivo: %s. Isso geralmente está relacionado às configurações de segurança.", stopped.Reason)
	}

	var noImage *NoImageError
	if errors.As(err, &noImage) {
		if noImage.Text != "" {
			return fmt.Sprintf("O modelo de IA não retornou uma imagem. O modelo respondeu com texto: %q", noImage.Text)
		}
		return "O modelo de IA não retornou uma imagem. Isso pode acontecer devido a filtros de segurança. Tente uma imagem ou comando diferente."
	}

	var malformed *MalformedTextError
	if errors.As(err, &malformed) {
		return "A IA retornou uma resposta em um formato inesperado. Tente novamente."
	}

	if errors.Is(err, ErrNoResponse) {
		return "Nenhuma resposta válida recebida do modelo."
	}

	return "Ocorreu um erro ao se comunicar com o modelo. Verifique sua conexão e tente novamente."
}
