package system

import (
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/models"
)

const captchaTypeBlockPuzzle = "blockPuzzle"

func (m *Module) login(r *http.Request) (models.AuthLoginResponse, error) {
	return m.auth.Login(r.Context())
}

// refreshToken answers like a fresh sign-in; the presented refresh token is
// not inspected.
func (m *Module) refreshToken(r *http.Request) (models.AuthLoginResponse, error) {
	return m.auth.Login(r.Context())
}

func (m *Module) logout(*http.Request) (bool, error) {
	return true, nil
}

func (m *Module) permissionInfo(*http.Request) (models.PermissionInfo, error) {
	return adminPermissionInfo(), nil
}

func (m *Module) captchaGet(*http.Request) (models.CaptchaPayload, error) {
	return models.CaptchaPayload{
		CaptchaType: captchaTypeBlockPuzzle,
		Token:       m.ids.Generate(),
		CaptchaID:   m.ids.Generate(),
		Point:       [2]uint16{15, 8},
	}, nil
}

// captchaCheck accepts every answer.
func (m *Module) captchaCheck(*http.Request) (models.CaptchaCheckResult, error) {
	return models.CaptchaCheckResult{Result: true}, nil
}

func adminPermissionInfo() models.PermissionInfo {
	return models.PermissionInfo{
		User: models.UserInfo{
			ID:       AdminUserID,
			Nickname: "Admin",
			Avatar:   "https://dummyimage.com/120x120/1890ff/ffffff&text=DAOYI",
			DeptID:   1,
			Username: "admin",
			Email:    "admin@example.com",
		},
		Roles:       []string{"super_admin"},
		Permissions: []string{"*:*:*"},
		Menus: []models.MenuInfo{
			{
				ID:            1,
				Name:          "Dashboard",
				Path:          "/dashboard",
				Component:     "dashboard/Analysis",
				ComponentName: "DashboardAnalysis",
				Icon:          "ion:grid-outline",
				Visible:       true,
				KeepAlive:     true,
				AlwaysShow:    true,
				Children:      []models.MenuInfo{},
			},
			{
				ID:            2,
				Name:          "System",
				Path:          "/system",
				Component:     "LAYOUT",
				ComponentName: "SystemLayout",
				Icon:          "ion:settings-outline",
				Visible:       true,
				KeepAlive:     true,
				AlwaysShow:    true,
				Children: []models.MenuInfo{
					{
						ID:            3,
						ParentID:      2,
						Name:          "User Management",
						Path:          "user",
						Component:     "system/user/index",
						ComponentName: "SystemUser",
						Icon:          "ion:person-outline",
						Visible:       true,
						KeepAlive:     true,
						Children:      []models.MenuInfo{},
					},
				},
			},
		},
	}
}
