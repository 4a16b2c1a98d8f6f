package module

import "github.com/MKhiriev/go-admin-gateway/internal/route"

// Names of the business modules that are listed but do not serve routes yet.
const (
	MemberModule = "daoyi-module-member"
	BPMModule    = "daoyi-module-bpm"
	PayModule    = "daoyi-module-pay"
	ReportModule = "daoyi-module-report"
	MPModule     = "daoyi-module-mp"
	MallModule   = "daoyi-module-mall"
	CRMModule    = "daoyi-module-crm"
	ERPModule    = "daoyi-module-erp"
	AIModule     = "daoyi-module-ai"
	IoTModule    = "daoyi-module-iot"
)

// PlaceholderNames lists the placeholder modules in mount order.
var PlaceholderNames = []string{
	MemberModule, BPMModule, PayModule, ReportModule, MPModule,
	MallModule, CRMModule, ERPModule, AIModule, IoTModule,
}

type placeholder struct {
	name string
}

// NewPlaceholder returns a module that is named but serves no routes.
func NewPlaceholder(name string) ServiceModule {
	return placeholder{name: name}
}

func (p placeholder) Name() string {
	return p.name
}

func (p placeholder) Router() (*route.Fragment, error) {
	return route.NewFragment(), nil
}
