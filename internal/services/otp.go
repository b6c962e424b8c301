package services

import (
	"context"
	"log"

	"worknest/pkg/otpcache"
	"worknest/pkg/utils"
)

// stageAndSendOtp generates a fresh 6-digit code, caches it under the email
// with the staging TTL and dispatches it by mail. A send failure surfaces as
// ErrOtpSendFailed; the cached code is left behind to expire on its own.
func stageAndSendOtp(ctx context.Context, store otpcache.Store, mail IMailService, email string) error {
	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return err
	}

	if err := store.StageOtp(ctx, email, code, otpcache.StagingTTL); err != nil {
		return err
	}

	if err := mail.SendOtpMail(email, code); err != nil {
		log.Printf("Failed to send OTP mail to %s: %v", email, err)
		return utils.ErrOtpSendFailed
	}
	return nil
}
