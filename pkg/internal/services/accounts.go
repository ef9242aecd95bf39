package services

import (
	"fmt"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func GetAccountByName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// EnsureAccount mirrors the identity service user behind a verified
// login token into a local row, provisioning it on first sight.
func EnsureAccount(claims security.LoginClaims) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where(models.Account{Name: claims.Name}).
		Attrs(models.Account{Nick: claims.Nick}).
		FirstOrCreate(&account).Error; err != nil {
		return account, fmt.Errorf("unable to ensure account: %v", err)
	}

	return account, nil
}

// DeleteAccount walks every relationship the account owns and removes
// it inside one transaction: comments it wrote, its posts with their
// comments, follow edges in both directions, then the row itself.
func DeleteAccount(account models.Account) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("author_id = ?", account.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("follower_id = ? OR author_id = ?", account.ID, account.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
	if err != nil {
		return fmt.Errorf("unable to delete account: %v", err)
	}

	log.Info().Uint("id", account.ID).Str("name", account.Name).Msg("Deleted account with owned content.")
	return nil
}
