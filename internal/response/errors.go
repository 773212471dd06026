package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionActive      ErrCode = "SESSION_ALREADY_ACTIVE"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrStudentAccessOnly ErrCode = "STUDENT_ACCESS_ONLY"
	ErrAdminAccessOnly   ErrCode = "ADMIN_ACCESS_ONLY"
	ErrAccountDisabled   ErrCode = "ACCOUNT_DISABLED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrEmailTaken ErrCode = "EMAIL_TAKEN"

	// ─── Quiz / exercises ──────────────────────────────────────────────
	ErrInvalidLevel     ErrCode = "INVALID_LEVEL"
	ErrUnknownTopic     ErrCode = "UNKNOWN_TOPIC"
	ErrQuizUnavailable  ErrCode = "QUIZ_UNAVAILABLE"
	ErrReviewIncomplete ErrCode = "REVIEW_INCOMPLETE"
	ErrLLMUnavailable   ErrCode = "LLM_UNAVAILABLE"
	ErrLLMMalformed     ErrCode = "LLM_MALFORMED_RESPONSE"

	// ─── Progress ──────────────────────────────────────────────────────
	ErrUnknownGame    ErrCode = "UNKNOWN_GAME"
	ErrInvalidStars   ErrCode = "INVALID_STARS"
	ErrNoProgress     ErrCode = "NO_PROGRESS"
	ErrUnknownPhase   ErrCode = "UNKNOWN_PHASE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "E-mail ou senha inválidos."
	case ErrSessionActive:
		return "Você já está conectado em outro dispositivo."
	case ErrSessionInvalidated:
		return "Sua sessão expirou. Faça login novamente."
	case ErrTokenRequired:
		return "Token de autenticação obrigatório."
	case ErrTokenInvalid:
		return "Token de autenticação inválido."
	case ErrTokenExpired:
		return "Token de autenticação expirado."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "Você não tem permissão para acessar este recurso."
	case ErrStudentAccessOnly:
		return "Este recurso é restrito a alunos."
	case ErrAdminAccessOnly:
		return "Acesso não autorizado. Apenas administradores podem acessar esta área."
	case ErrAccountDisabled:
		return "Esta conta está desativada. Procure um administrador."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Falha na validação. Verifique os dados enviados."
	case ErrInvalidID:
		return "Formato de ID inválido."
	case ErrInvalidPayload:
		return "Corpo da requisição inválido."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Recurso não encontrado."
	case ErrEmailTaken:
		return "Já existe um aluno cadastrado com este e-mail."

	// ─── Quiz / exercises ──────────────────────────────────────────────
	case ErrInvalidLevel:
		return "Nível inválido. Use: facil, medio ou dificil."
	case ErrUnknownTopic:
		return "Tema inválido ou ausente. Consulte a lista de temas disponíveis."
	case ErrQuizUnavailable:
		return "Falha na geração de perguntas e o banco de reserva está indisponível ou vazio para o tema/nível solicitado."
	case ErrReviewIncomplete:
		return "Dados incompletos para a correção."
	case ErrLLMUnavailable:
		return "O serviço de correção está temporariamente indisponível."
	case ErrLLMMalformed:
		return "Não foi possível interpretar a resposta do serviço de correção."

	// ─── Progress ──────────────────────────────────────────────────────
	case ErrUnknownGame:
		return "Jogo não encontrado."
	case ErrInvalidStars:
		return "O valor de 'estrelas' deve ser um número inteiro entre 0 e 3."
	case ErrNoProgress:
		return "Progresso não encontrado para este jogo."
	case ErrUnknownPhase:
		return "Fase desconhecida para este jogo."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Muitas requisições. Tente novamente em instantes."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocorreu um erro interno no servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
