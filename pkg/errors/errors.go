package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized  = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
)

// 例行程序（루틴）模块错误。
var (
	RoutineNotFound           = Definition{Code: "ROUTINE_NOT_FOUND", Message: "Routine not found"}
	RoutineFrequencyInvalid   = Definition{Code: "ROUTINE_FREQUENCY_INVALID", Message: "Routine frequency contains an unknown weekday"}
	RoutineDifficultyInvalid  = Definition{Code: "ROUTINE_DIFFICULTY_INVALID", Message: "Routine difficulty invalid"}
	GroupRoutineNeedsApproval = Definition{Code: "GROUP_ROUTINE_NEEDS_APPROVAL", Message: "Group routine completion requires proof approval"}
)

// 小组模块错误。
var (
	GroupNotFound  = Definition{Code: "GROUP_NOT_FOUND", Message: "Group not found"}
	GroupFull      = Definition{Code: "GROUP_FULL", Message: "Group member limit reached"}
	MemberNotFound = Definition{Code: "MEMBER_NOT_FOUND", Message: "Group member not found"}
	AlreadyMember  = Definition{Code: "ALREADY_MEMBER", Message: "Already a member of this group"}
)

// 认证凭证（打卡证明）模块错误。
var (
	ProofNotFound   = Definition{Code: "PROOF_NOT_FOUND", Message: "Proof submission not found"}
	ProofQueueFull  = Definition{Code: "PROOF_QUEUE_FULL", Message: "Pending proof queue is full"}
	ProofTargetGone = Definition{Code: "PROOF_TARGET_GONE", Message: "Target routine no longer exists in this group"}
)

// 用户模块错误。
var (
	UserNotFound = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// 通用错误。
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// token 相关哨兵错误，仅在 pkg/token 内部包装后向上传递。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator is not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token claims")
)

// SkipMessageError 表示队列消息应当被跳过（已处理过等），消费者据此 Ack 而非重试。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return e.Reason
}

// IsSkipMessageError 判断错误是否为跳过消息类型
func IsSkipMessageError(err error) bool {
	var skip *SkipMessageError
	return errors.As(err, &skip)
}

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:              Unauthorized,
	InvalidUserID.Code:             InvalidUserID,
	RoutineNotFound.Code:           RoutineNotFound,
	RoutineFrequencyInvalid.Code:   RoutineFrequencyInvalid,
	RoutineDifficultyInvalid.Code:  RoutineDifficultyInvalid,
	GroupRoutineNeedsApproval.Code: GroupRoutineNeedsApproval,
	GroupNotFound.Code:             GroupNotFound,
	GroupFull.Code:                 GroupFull,
	MemberNotFound.Code:            MemberNotFound,
	AlreadyMember.Code:             AlreadyMember,
	ProofNotFound.Code:             ProofNotFound,
	ProofQueueFull.Code:            ProofQueueFull,
	ProofTargetGone.Code:           ProofTargetGone,
	UserNotFound.Code:              UserNotFound,
	TooManyRequests.Code:           TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
