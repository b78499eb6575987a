package payroll

import (
	"github.com/dayflow-hrms/hrms-backend-go/internal/config"
	"github.com/dayflow-hrms/hrms-backend-go/internal/domain/payroll"
)

// RulesFromConfig overlays the configured payroll constants on the default rates.
func RulesFromConfig(cfg config.PayrollConfig) payroll.ComponentRules {
	rules := payroll.DefaultComponentRules()
	if cfg.LTARate.IsPositive() {
		rules.LTAPercent = cfg.LTARate
	}
	if !cfg.ProfessionalTax.IsNegative() {
		rules.ProfessionalTax = cfg.ProfessionalTax
	}
	if cfg.AllowanceMode == string(payroll.AllowanceModeFixed) {
		rules.Mode = payroll.AllowanceModeFixed
	}
	if cfg.StandardAllowanceAmount.IsPositive() {
		rules.StandardAllowanceAmount = cfg.StandardAllowanceAmount
	}
	return rules
}
