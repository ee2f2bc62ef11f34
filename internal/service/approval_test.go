package service

import (
	"context"
	"errors"
	"testing"

	"RoutineOK/config"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	pkgerrors "RoutineOK/pkg/errors"
)

// seedGroup 往全局 store 里登记一个带成员和例程的小组
// 各测试用互不相同的 ID 段避免串扰
func seedGroup(t *testing.T, groupID, memberID, routineID int64) *model.Group {
	t.Helper()

	g := &model.Group{
		ID:        groupID,
		Name:      "미라클 모닝",
		GroupType: model.GroupTypeRequired,
		Routines:  []*model.Routine{{ID: routineID, Name: "기상 인증"}},
	}
	routineStore.PutGroup(g)
	if err := routineStore.AddMember(groupID, &model.Member{ID: memberID, Nickname: "영희"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	return g
}

func TestSubmitProofValidation(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	seedGroup(t, 9001, 1, 501)

	req := &dto.SubmitProofRequest{RoutineID: 501, Message: "오늘도 성공!"}

	if _, err := svc.Submit(ctx, 1, 404, req); !errors.Is(err, pkgerrors.GroupNotFound) {
		t.Errorf("unknown group = %v, want GroupNotFound", err)
	}
	if _, err := svc.Submit(ctx, 999, 9001, req); !errors.Is(err, pkgerrors.MemberNotFound) {
		t.Errorf("non-member = %v, want MemberNotFound", err)
	}
	if _, err := svc.Submit(ctx, 1, 9001, &dto.SubmitProofRequest{RoutineID: 404}); !errors.Is(err, pkgerrors.RoutineNotFound) {
		t.Errorf("unknown routine = %v, want RoutineNotFound", err)
	}

	var submitted model.ProofSubmittedMessage
	svc.publishSubmitted = func(msg model.ProofSubmittedMessage) { submitted = msg }

	proof, err := svc.Submit(ctx, 1, 9001, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if proof.ID == 0 || proof.Nickname != "영희" || proof.RoutineID != 501 {
		t.Errorf("proof = %+v", proof)
	}
	if pendingStore.Len(9001) != 1 {
		t.Errorf("pending len = %d, want 1", pendingStore.Len(9001))
	}
	if submitted.ProofID != proof.ID || submitted.GroupID != 9001 {
		t.Errorf("published = %+v", submitted)
	}
}

func TestSubmitProofNotifiesOtherMembers(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	seedGroup(t, 9006, 6, 506)
	if err := routineStore.AddMember(9006, &model.Member{ID: 61, Nickname: "민수"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := routineStore.AddMember(9006, &model.Member{ID: 62, Nickname: "지은"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	var submitted model.ProofSubmittedMessage
	svc.publishSubmitted = func(msg model.ProofSubmittedMessage) { submitted = msg }

	if _, err := svc.Submit(ctx, 6, 9006, &dto.SubmitProofRequest{RoutineID: 506}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// 审批提醒发给其他成员，提交者自己不收
	if len(submitted.Recipients) != 2 {
		t.Fatalf("Recipients = %v, want 2 reviewers", submitted.Recipients)
	}
	got := map[int64]bool{}
	for _, id := range submitted.Recipients {
		if id == 6 {
			t.Error("submitter listed as notification recipient")
		}
		got[id] = true
	}
	if !got[61] || !got[62] {
		t.Errorf("Recipients = %v, want members 61 and 62", submitted.Recipients)
	}
}

func TestSubmitProofQueueFull(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	seedGroup(t, 9002, 2, 502)

	old := config.Cfg.GroupMaxPendProofs
	config.Cfg.GroupMaxPendProofs = 1
	defer func() { config.Cfg.GroupMaxPendProofs = old }()

	req := &dto.SubmitProofRequest{RoutineID: 502}
	if _, err := svc.Submit(ctx, 2, 9002, req); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(ctx, 2, 9002, req); !errors.Is(err, pkgerrors.ProofQueueFull) {
		t.Errorf("over limit = %v, want ProofQueueFull", err)
	}
}

func TestApproveCertifiesAndRemoves(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	g := seedGroup(t, 9003, 3, 503)

	var resolved model.ProofResolvedMessage
	svc.publishResolved = func(msg model.ProofResolvedMessage) { resolved = msg }

	proof, err := svc.Submit(ctx, 3, 9003, &dto.SubmitProofRequest{RoutineID: 503})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Approve(ctx, 9003, 404); !errors.Is(err, pkgerrors.ProofNotFound) {
		t.Errorf("unknown proof = %v, want ProofNotFound", err)
	}

	if err := svc.Approve(ctx, 9003, proof.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	routine := g.FindRoutine(503)
	member := g.FindMember(3)
	if !routine.Completed || routine.Streak != 1 {
		t.Errorf("routine = completed %v streak %d", routine.Completed, routine.Streak)
	}
	if !member.IsCertified || member.Approvals != 1 {
		t.Errorf("member = certified %v approvals %d", member.IsCertified, member.Approvals)
	}
	if pendingStore.Len(9003) != 0 {
		t.Errorf("pending len = %d after approve", pendingStore.Len(9003))
	}
	if !resolved.Approved || resolved.ProofID != proof.ID {
		t.Errorf("resolved = %+v", resolved)
	}

	// 同一凭证不能二次裁决
	if err := svc.Approve(ctx, 9003, proof.ID); !errors.Is(err, pkgerrors.ProofNotFound) {
		t.Errorf("double approve = %v, want ProofNotFound", err)
	}
}

func TestApproveRemovesUnfulfillableProof(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	seedGroup(t, 9004, 4, 504)

	proof, err := svc.Submit(ctx, 4, 9004, &dto.SubmitProofRequest{RoutineID: 504})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// 例程在审批前被删掉
	if err := routineStore.DeleteGroupRoutine(504); err != nil {
		t.Fatalf("DeleteGroupRoutine: %v", err)
	}

	if err := svc.Approve(ctx, 9004, proof.ID); !errors.Is(err, pkgerrors.ProofTargetGone) {
		t.Errorf("Approve = %v, want ProofTargetGone", err)
	}
	if pendingStore.Len(9004) != 0 {
		t.Error("unfulfillable proof left in queue")
	}
}

func TestRejectOnlyRemoves(t *testing.T) {
	svc := &ApprovalService{}
	ctx := context.Background()
	g := seedGroup(t, 9005, 5, 505)

	var resolved model.ProofResolvedMessage
	svc.publishResolved = func(msg model.ProofResolvedMessage) { resolved = msg }

	proof, err := svc.Submit(ctx, 5, 9005, &dto.SubmitProofRequest{RoutineID: 505})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Reject(ctx, 9005, proof.ID); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	routine := g.FindRoutine(505)
	member := g.FindMember(5)
	if routine.Completed || routine.Streak != 0 {
		t.Errorf("reject completed the routine: %+v", routine)
	}
	if member.IsCertified || member.Approvals != 0 {
		t.Errorf("reject certified the member: %+v", member)
	}
	if resolved.Approved {
		t.Error("resolved message marked approved on reject")
	}

	if err := svc.Reject(ctx, 9005, proof.ID); !errors.Is(err, pkgerrors.ProofNotFound) {
		t.Errorf("double reject = %v, want ProofNotFound", err)
	}
}
