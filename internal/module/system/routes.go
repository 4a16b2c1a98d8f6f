package system

import (
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/models"
)

// Routes is the static endpoint table of the system module: users, roles,
// menus, departments, dictionaries, tenants, notices, OAuth2 clients, SMS and
// mail channels, logs and the auth endpoints. Rows without a hand-written
// handler answer with the mock payload.
var Routes = []models.RouteEntry{
	{Method: http.MethodDelete, Path: "/system/dept/delete-list"},
	{Method: http.MethodDelete, Path: "/system/deptdelete"},
	{Method: http.MethodDelete, Path: "/system/dict-data/delete"},
	{Method: http.MethodDelete, Path: "/system/dict-data/delete-list"},
	{Method: http.MethodDelete, Path: "/system/dict-type/delete"},
	{Method: http.MethodDelete, Path: "/system/dict-type/delete-list"},
	{Method: http.MethodDelete, Path: "/system/mail-account/delete"},
	{Method: http.MethodDelete, Path: "/system/mail-account/delete-list"},
	{Method: http.MethodDelete, Path: "/system/mail-template/delete"},
	{Method: http.MethodDelete, Path: "/system/mail-template/delete-list"},
	{Method: http.MethodDelete, Path: "/system/menu/delete"},
	{Method: http.MethodDelete, Path: "/system/menu/delete-list"},
	{Method: http.MethodDelete, Path: "/system/notice/delete"},
	{Method: http.MethodDelete, Path: "/system/notice/delete-list"},
	{Method: http.MethodDelete, Path: "/system/notify-template/delete"},
	{Method: http.MethodDelete, Path: "/system/notify-template/delete-list"},
	{Method: http.MethodDelete, Path: "/system/oauth2-client/delete"},
	{Method: http.MethodDelete, Path: "/system/oauth2-client/delete-list"},
	{Method: http.MethodDelete, Path: "/system/oauth2-token/delete"},
	{Method: http.MethodDelete, Path: "/system/oauth2-token/delete-list"},
	{Method: http.MethodDelete, Path: "/system/oauth2/token"},
	{Method: http.MethodDelete, Path: "/system/post/delete"},
	{Method: http.MethodDelete, Path: "/system/role/delete"},
	{Method: http.MethodDelete, Path: "/system/role/delete-list"},
	{Method: http.MethodDelete, Path: "/system/sms-template/delete"},
	{Method: http.MethodDelete, Path: "/system/sms-template/delete-list"},
	{Method: http.MethodDelete, Path: "/system/social-client/delete"},
	{Method: http.MethodDelete, Path: "/system/social-client/delete-list"},
	{Method: http.MethodDelete, Path: "/system/social-user/unbind"},
	{Method: http.MethodDelete, Path: "/system/tenant-package/delete"},
	{Method: http.MethodDelete, Path: "/system/tenant-package/delete-list"},
	{Method: http.MethodDelete, Path: "/system/tenant/delete"},
	{Method: http.MethodDelete, Path: "/system/tenant/delete-list"},
	{Method: http.MethodDelete, Path: "/system/user/delete"},
	{Method: http.MethodDelete, Path: "/system/user/delete-list"},
	{Method: http.MethodDelete, Path: "/system/sms-channel/delete"},
	{Method: http.MethodDelete, Path: "/system/sms-channel/delete-list"},
	{Method: http.MethodGet, Path: "/system/area/get-by-ip"},
	{Method: http.MethodGet, Path: "/system/area/tree"},
	{Method: http.MethodGet, Path: "/system/auth/social-auth-redirect"},
	{Method: http.MethodGet, Path: "/system/dept/get"},
	{Method: http.MethodGet, Path: "/system/dept/list"},
	{Method: http.MethodGet, Path: "/system/dept/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/dict-data/export-excel"},
	{Method: http.MethodGet, Path: "/system/dict-data/get"},
	{Method: http.MethodGet, Path: "/system/dict-data/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/dict-data/page"},
	{Method: http.MethodGet, Path: "/system/dict-data/type"},
	{Method: http.MethodGet, Path: "/system/dict-type/export-excel"},
	{Method: http.MethodGet, Path: "/system/dict-type/get"},
	{Method: http.MethodGet, Path: "/system/dict-type/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/dict-type/page"},
	{Method: http.MethodGet, Path: "/system/login-log/export-excel"},
	{Method: http.MethodGet, Path: "/system/login-log/page"},
	{Method: http.MethodGet, Path: "/system/mail-account/get"},
	{Method: http.MethodGet, Path: "/system/mail-account/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/mail-account/page"},
	{Method: http.MethodGet, Path: "/system/mail-log/get"},
	{Method: http.MethodGet, Path: "/system/mail-log/page"},
	{Method: http.MethodGet, Path: "/system/mail-template/get"},
	{Method: http.MethodGet, Path: "/system/mail-template/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/mail-template/page"},
	{Method: http.MethodGet, Path: "/system/menu/get"},
	{Method: http.MethodGet, Path: "/system/menu/list"},
	{Method: http.MethodGet, Path: "/system/menu/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/notice/get"},
	{Method: http.MethodGet, Path: "/system/notice/page"},
	{Method: http.MethodGet, Path: "/system/notify-message/get"},
	{Method: http.MethodGet, Path: "/system/notify-message/get-unread-count"},
	{Method: http.MethodGet, Path: "/system/notify-message/get-unread-list"},
	{Method: http.MethodGet, Path: "/system/notify-message/my-page"},
	{Method: http.MethodGet, Path: "/system/notify-message/page"},
	{Method: http.MethodGet, Path: "/system/notify-template/get"},
	{Method: http.MethodGet, Path: "/system/notify-template/page"},
	{Method: http.MethodGet, Path: "/system/oauth2-client/get"},
	{Method: http.MethodGet, Path: "/system/oauth2-client/page"},
	{Method: http.MethodGet, Path: "/system/oauth2-token/page"},
	{Method: http.MethodGet, Path: "/system/oauth2/authorize"},
	{Method: http.MethodGet, Path: "/system/oauth2/user/get"},
	{Method: http.MethodGet, Path: "/system/operate-log/export-excel"},
	{Method: http.MethodGet, Path: "/system/operate-log/page"},
	{Method: http.MethodGet, Path: "/system/permission/list-role-menus"},
	{Method: http.MethodGet, Path: "/system/permission/list-user-roles"},
	{Method: http.MethodGet, Path: "/system/post/export-excel"},
	{Method: http.MethodGet, Path: "/system/post/get"},
	{Method: http.MethodGet, Path: "/system/post/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/post/page"},
	{Method: http.MethodGet, Path: "/system/role/export-excel"},
	{Method: http.MethodGet, Path: "/system/role/get"},
	{Method: http.MethodGet, Path: "/system/role/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/role/page"},
	{Method: http.MethodGet, Path: "/system/sms-log/export-excel"},
	{Method: http.MethodGet, Path: "/system/sms-log/page"},
	{Method: http.MethodGet, Path: "/system/sms-template/export-excel"},
	{Method: http.MethodGet, Path: "/system/sms-template/get"},
	{Method: http.MethodGet, Path: "/system/sms-template/page"},
	{Method: http.MethodGet, Path: "/system/social-client/get"},
	{Method: http.MethodGet, Path: "/system/social-client/page"},
	{Method: http.MethodGet, Path: "/system/social-user/get"},
	{Method: http.MethodGet, Path: "/system/social-user/get-bind-list"},
	{Method: http.MethodGet, Path: "/system/social-user/page"},
	{Method: http.MethodGet, Path: "/system/tenant-package/get"},
	{Method: http.MethodGet, Path: "/system/tenant-package/get-simple-list"},
	{Method: http.MethodGet, Path: "/system/tenant-package/page"},
	{Method: http.MethodGet, Path: "/system/tenant/export-excel"},
	{Method: http.MethodGet, Path: "/system/tenant/get"},
	{Method: http.MethodGet, Path: "/system/tenant/get-by-website"},
	{Method: http.MethodGet, Path: "/system/tenant/get-id-by-name"},
	{Method: http.MethodGet, Path: "/system/tenant/page"},
	{Method: http.MethodGet, Path: "/system/tenantsimple-list"},
	{Method: http.MethodGet, Path: "/system/user/export-excel"},
	{Method: http.MethodGet, Path: "/system/user/get"},
	{Method: http.MethodGet, Path: "/system/user/get-import-template"},
	{Method: http.MethodGet, Path: "/system/user/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/user/page"},
	{Method: http.MethodGet, Path: "/system/user/profile/get"},
	{Method: http.MethodGet, Path: "/system/sms-channel/get"},
	{Method: http.MethodGet, Path: "/system/sms-channel/list-all-simple"},
	{Method: http.MethodGet, Path: "/system/sms-channel/page"},
	{Method: http.MethodPost, Path: "/system/auth/register"},
	{Method: http.MethodPost, Path: "/system/auth/reset-password"},
	{Method: http.MethodPost, Path: "/system/auth/send-sms-code"},
	{Method: http.MethodPost, Path: "/system/auth/sms-login"},
	{Method: http.MethodPost, Path: "/system/auth/social-login"},
	{Method: http.MethodPost, Path: "/system/deptcreate"},
	{Method: http.MethodPost, Path: "/system/dict-data/create"},
	{Method: http.MethodPost, Path: "/system/dict-type/create"},
	{Method: http.MethodPost, Path: "/system/mail-account/create"},
	{Method: http.MethodPost, Path: "/system/mail-template/create"},
	{Method: http.MethodPost, Path: "/system/mail-template/send-mail"},
	{Method: http.MethodPost, Path: "/system/menu/create"},
	{Method: http.MethodPost, Path: "/system/notice/create"},
	{Method: http.MethodPost, Path: "/system/notice/push"},
	{Method: http.MethodPost, Path: "/system/notify-template/create"},
	{Method: http.MethodPost, Path: "/system/notify-template/send-notify"},
	{Method: http.MethodPost, Path: "/system/oauth2-client/create"},
	{Method: http.MethodPost, Path: "/system/oauth2/authorize"},
	{Method: http.MethodPost, Path: "/system/oauth2/check-token"},
	{Method: http.MethodPost, Path: "/system/oauth2/token"},
	{Method: http.MethodPost, Path: "/system/permission/assign-role-data-scope"},
	{Method: http.MethodPost, Path: "/system/permission/assign-role-menu"},
	{Method: http.MethodPost, Path: "/system/permission/assign-user-role"},
	{Method: http.MethodPost, Path: "/system/post/create"},
	{Method: http.MethodPost, Path: "/system/role/create"},
	{Method: http.MethodPost, Path: "/system/sms-template/create"},
	{Method: http.MethodPost, Path: "/system/sms-template/send-sms"},
	{Method: http.MethodPost, Path: "/system/sms/callback/aliyun"},
	{Method: http.MethodPost, Path: "/system/sms/callback/huawei"},
	{Method: http.MethodPost, Path: "/system/sms/callback/qiniu"},
	{Method: http.MethodPost, Path: "/system/sms/callback/tencent"},
	{Method: http.MethodPost, Path: "/system/social-client/create"},
	{Method: http.MethodPost, Path: "/system/social-client/send-subscribe-message"},
	{Method: http.MethodPost, Path: "/system/social-user/bind"},
	{Method: http.MethodPost, Path: "/system/tenant-package/create"},
	{Method: http.MethodPost, Path: "/system/tenant/create"},
	{Method: http.MethodPost, Path: "/system/user/create"},
	{Method: http.MethodPost, Path: "/system/user/import"},
	{Method: http.MethodPost, Path: "/system/sms-channel/create"},
	{Method: http.MethodPut, Path: "/system/deptupdate"},
	{Method: http.MethodPut, Path: "/system/dict-data/update"},
	{Method: http.MethodPut, Path: "/system/dict-type/update"},
	{Method: http.MethodPut, Path: "/system/mail-account/update"},
	{Method: http.MethodPut, Path: "/system/mail-template/update"},
	{Method: http.MethodPut, Path: "/system/menu/update"},
	{Method: http.MethodPut, Path: "/system/notice/update"},
	{Method: http.MethodPut, Path: "/system/notify-message/update-all-read"},
	{Method: http.MethodPut, Path: "/system/notify-message/update-read"},
	{Method: http.MethodPut, Path: "/system/notify-template/update"},
	{Method: http.MethodPut, Path: "/system/oauth2-client/update"},
	{Method: http.MethodPut, Path: "/system/oauth2/user/update"},
	{Method: http.MethodPut, Path: "/system/post/update"},
	{Method: http.MethodPut, Path: "/system/role/update"},
	{Method: http.MethodPut, Path: "/system/sms-template/update"},
	{Method: http.MethodPut, Path: "/system/social-client/update"},
	{Method: http.MethodPut, Path: "/system/tenant-package/update"},
	{Method: http.MethodPut, Path: "/system/tenant/update"},
	{Method: http.MethodPut, Path: "/system/user/profile/update"},
	{Method: http.MethodPut, Path: "/system/user/profile/update-password"},
	{Method: http.MethodPut, Path: "/system/user/update-password"},
	{Method: http.MethodPut, Path: "/system/user/update-status"},
	{Method: http.MethodPut, Path: "/system/userupdate"},
	{Method: http.MethodPut, Path: "/system/sms-channel/update"},
}
