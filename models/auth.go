package models

import "time"

// AuthLoginResponse is returned by the login and refresh-token endpoints.
type AuthLoginResponse struct {
	UserID       int64     `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresTime  time.Time `json:"expiresTime"`
}

// UserInfo is the user section of [PermissionInfo].
type UserInfo struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	DeptID   int64  `json:"deptId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MenuInfo is one node of the admin menu tree. Children nest recursively.
type MenuInfo struct {
	ID            int64      `json:"id"`
	ParentID      int64      `json:"parentId"`
	Name          string     `json:"name"`
	Path          string     `json:"path"`
	Component     string     `json:"component"`
	ComponentName string     `json:"componentName"`
	Icon          string     `json:"icon"`
	Visible       bool       `json:"visible"`
	KeepAlive     bool       `json:"keepAlive"`
	AlwaysShow    bool       `json:"alwaysShow"`
	Children      []MenuInfo `json:"children"`
}

// PermissionInfo is the payload of the get-permission-info endpoint: the
// signed-in user, their roles and permissions and the menu tree the admin UI
// renders.
type PermissionInfo struct {
	User        UserInfo   `json:"user"`
	Roles       []string   `json:"roles"`
	Permissions []string   `json:"permissions"`
	Menus       []MenuInfo `json:"menus"`
}
