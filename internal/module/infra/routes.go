package infra

import (
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/models"
)

// Routes is the static endpoint table of the infra module: code generation,
// runtime config, data sources, the demo CRUD screens, file storage, API logs
// and the cache monitor. Rows without a hand-written handler answer with the
// mock payload.
var Routes = []models.RouteEntry{
	{Method: http.MethodDelete, Path: "/infra/codegen/delete"},
	{Method: http.MethodDelete, Path: "/infra/codegen/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/config/delete"},
	{Method: http.MethodDelete, Path: "/infra/config/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/data-source-config/delete"},
	{Method: http.MethodDelete, Path: "/infra/data-source-config/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo01-contact/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo01-contact/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo02-category/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/demo03-course/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/demo03-course/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/demo03-grade/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-erp/demo03-grade/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-inner/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-inner/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-normal/delete"},
	{Method: http.MethodDelete, Path: "/infra/demo03-student-normal/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/file-config/delete"},
	{Method: http.MethodDelete, Path: "/infra/file-config/delete-list"},
	{Method: http.MethodDelete, Path: "/infra/file/delete"},
	{Method: http.MethodDelete, Path: "/infra/file/delete-list"},
	{Method: http.MethodGet, Path: "/infra/api-access-log/export-excel"},
	{Method: http.MethodGet, Path: "/infra/api-access-log/page"},
	{Method: http.MethodGet, Path: "/infra/api-error-log/export-excel"},
	{Method: http.MethodGet, Path: "/infra/api-error-log/page"},
	{Method: http.MethodGet, Path: "/infra/codegen/db/table/list"},
	{Method: http.MethodGet, Path: "/infra/codegen/detail"},
	{Method: http.MethodGet, Path: "/infra/codegen/download"},
	{Method: http.MethodGet, Path: "/infra/codegen/preview"},
	{Method: http.MethodGet, Path: "/infra/codegen/table/list"},
	{Method: http.MethodGet, Path: "/infra/codegen/table/page"},
	{Method: http.MethodGet, Path: "/infra/config/export-excel"},
	{Method: http.MethodGet, Path: "/infra/config/get"},
	{Method: http.MethodGet, Path: "/infra/config/get-value-by-key"},
	{Method: http.MethodGet, Path: "/infra/config/page"},
	{Method: http.MethodGet, Path: "/infra/data-source-config/get"},
	{Method: http.MethodGet, Path: "/infra/data-source-config/list"},
	{Method: http.MethodGet, Path: "/infra/demo01-contact/export-excel"},
	{Method: http.MethodGet, Path: "/infra/demo01-contact/get"},
	{Method: http.MethodGet, Path: "/infra/demo01-contact/page"},
	{Method: http.MethodGet, Path: "/infra/demo02-category/export-excel"},
	{Method: http.MethodGet, Path: "/infra/demo02-category/get"},
	{Method: http.MethodGet, Path: "/infra/demo02-category/list"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/demo03-course/get"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/demo03-course/page"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/demo03-grade/get"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/demo03-grade/page"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/export-excel"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/get"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-erp/page"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-inner/demo03-course/list-by-student-id"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-inner/demo03-grade/get-by-student-id"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-inner/export-excel"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-inner/get"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-inner/page"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-normal/demo03-course/list-by-student-id"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-normal/demo03-grade/get-by-student-id"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-normal/export-excel"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-normal/get"},
	{Method: http.MethodGet, Path: "/infra/demo03-student-normal/page"},
	{Method: http.MethodGet, Path: "/infra/file-config/get"},
	{Method: http.MethodGet, Path: "/infra/file-config/page"},
	{Method: http.MethodGet, Path: "/infra/file-config/test"},
	{Method: http.MethodGet, Path: "/infra/file/page"},
	{Method: http.MethodGet, Path: "/infra/file/presigned-url"},
	{Method: http.MethodGet, Path: "/infra/file/{configId}/get/**"},
	{Method: http.MethodGet, Path: "/infra/redis/get-monitor-info"},
	{Method: http.MethodPost, Path: "/infra/codegen/create-list"},
	{Method: http.MethodPost, Path: "/infra/config/create"},
	{Method: http.MethodPost, Path: "/infra/data-source-config/create"},
	{Method: http.MethodPost, Path: "/infra/demo01-contact/create"},
	{Method: http.MethodPost, Path: "/infra/demo02-category/create"},
	{Method: http.MethodPost, Path: "/infra/demo03-student-erp/create"},
	{Method: http.MethodPost, Path: "/infra/demo03-student-erp/demo03-course/create"},
	{Method: http.MethodPost, Path: "/infra/demo03-student-erp/demo03-grade/create"},
	{Method: http.MethodPost, Path: "/infra/demo03-student-inner/create"},
	{Method: http.MethodPost, Path: "/infra/demo03-student-normal/create"},
	{Method: http.MethodPost, Path: "/infra/file-config/create"},
	{Method: http.MethodPost, Path: "/infra/file/create"},
	{Method: http.MethodPost, Path: "/infra/file/upload"},
	{Method: http.MethodPut, Path: "/infra/api-error-log/update-status"},
	{Method: http.MethodPut, Path: "/infra/codegen/sync-from-db"},
	{Method: http.MethodPut, Path: "/infra/codegen/update"},
	{Method: http.MethodPut, Path: "/infra/config/update"},
	{Method: http.MethodPut, Path: "/infra/data-source-config/update"},
	{Method: http.MethodPut, Path: "/infra/demo01-contact/update"},
	{Method: http.MethodPut, Path: "/infra/demo02-category/update"},
	{Method: http.MethodPut, Path: "/infra/demo03-student-erp/demo03-course/update"},
	{Method: http.MethodPut, Path: "/infra/demo03-student-erp/demo03-grade/update"},
	{Method: http.MethodPut, Path: "/infra/demo03-student-erp/update"},
	{Method: http.MethodPut, Path: "/infra/demo03-student-inner/update"},
	{Method: http.MethodPut, Path: "/infra/demo03-student-normal/update"},
	{Method: http.MethodPut, Path: "/infra/file-config/update"},
	{Method: http.MethodPut, Path: "/infra/file-config/update-master"},
}
