package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nominacol/nomina-backend-go/internal/domain/advance"
	"github.com/nominacol/nomina-backend-go/internal/domain/payroll"
	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
)

// RenderReport renders a stored run as the plain-text liquidation sheet
// handed to accounting. The wording is Spanish because that is what the
// accountants file.
func RenderReport(run payroll.Run, rates payroll.DeductionRates, advances []advance.Advance) string {
	var b strings.Builder

	daysInMonth, _ := dates.DaysInMonth(run.Month)

	fmt.Fprintf(&b, "NOMINA - %s\n", dates.FormatMonthYear(run.Month))
	fmt.Fprintf(&b, "Fecha de procesamiento: %s\n", run.AsOf.Format("2006-01-02"))
	fmt.Fprintf(&b, "Días del mes: %d\n", daysInMonth)
	fmt.Fprintf(&b, "Configuración de deducciones:\n")
	fmt.Fprintf(&b, "  - Salud: %s%%\n", rates.Health)
	fmt.Fprintf(&b, "  - Pensión: %s%%\n", rates.Pension)
	fmt.Fprintf(&b, "  - Solidaridad: %s%%\n", rates.Solidarity)
	fmt.Fprintf(&b, "  - Auxilio de Transporte: $%s\n", money(rates.TransportAllowance))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	advancesByEmployee := make(map[string][]advance.Advance)
	for _, a := range advances {
		if a.Month == run.Month {
			advancesByEmployee[a.EmployeeID] = append(advancesByEmployee[a.EmployeeID], a)
		}
	}

	totalGross := decimal.Zero
	totalDeductions := decimal.Zero
	totalNet := decimal.Zero

	for i, calc := range run.Records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, calc.Employee.Name)
		fmt.Fprintf(&b, "   Cédula: %s\n", calc.Employee.Cedula)
		fmt.Fprintf(&b, "   Contrato: %s\n", calc.Employee.ContractType)
		fmt.Fprintf(&b, "   Salario Base: $%s\n", money(calc.BaseSalary))
		fmt.Fprintf(&b, "   Días Trabajados del Mes: %d/%d\n", calc.WorkedDays, calc.TotalDaysInMonth)
		fmt.Fprintf(&b, "   Días Trabajados Totales: %d\n", calc.Employee.WorkedDaysTotal)
		fmt.Fprintf(&b, "   Días Descontados: %d\n", calc.DiscountedDays)
		fmt.Fprintf(&b, "   Salario Bruto: $%s\n", money(calc.GrossSalary))
		fmt.Fprintf(&b, "   Auxilio Transporte: $%s\n", money(calc.TransportAllowance))

		if calc.Bonuses.Total.IsPositive() {
			b.WriteString("   Adiciones:\n")
			writePositive(&b, "Compensatorios fijos", calc.Bonuses.FixedCompensation)
			writePositive(&b, "Bonificación en venta", calc.Bonuses.SalesBonus)
			writePositive(&b, "Horas extra fijas", calc.Bonuses.FixedOvertime)
			writePositive(&b, "Horas extra NE", calc.Bonuses.UnexpectedOvertime)
			writePositive(&b, "Recargos nocturnos", calc.Bonuses.NightSurcharge)
			writePositive(&b, "Festivos", calc.Bonuses.SundayWork)
			writePositive(&b, "Auxilio de gasolina", calc.Bonuses.GasAllowance)
			writePositive(&b, "Licencia de estudio", calc.Bonuses.StudyLicense)
			fmt.Fprintf(&b, "     - Total Adiciones: $%s\n", money(calc.Bonuses.Total))
		}

		b.WriteString("   Deducciones:\n")
		fmt.Fprintf(&b, "     - Salud (%s%%): $%s\n", rates.Health, money(calc.Deductions.Health))
		fmt.Fprintf(&b, "     - Pensión (%s%%): $%s\n", rates.Pension, money(calc.Deductions.Pension))
		if calc.Deductions.Solidarity.IsPositive() {
			fmt.Fprintf(&b, "     - Solidaridad (%s%%): $%s\n", rates.Solidarity, money(calc.Deductions.Solidarity))
		}
		writePositive(&b, "Ausencias", calc.Deductions.Absence)
		writePositive(&b, "Plan corporativo", calc.Deductions.PlanCorporativo)
		writePositive(&b, "Recordar", calc.Deductions.Recordar)
		writePositive(&b, "Inventarios y cruces", calc.Deductions.InventariosCruces)
		writePositive(&b, "Multas", calc.Deductions.Multas)
		writePositive(&b, "Fondo empleados", calc.Deductions.FondoEmpleados)
		writePositive(&b, "Cartera empleados", calc.Deductions.CarteraEmpleados)
		writePositive(&b, "Anticipo Quincena", calc.Deductions.Advance)
		fmt.Fprintf(&b, "     - Total Deducciones: $%s\n", money(calc.Deductions.Total))
		fmt.Fprintf(&b, "   SALARIO NETO: $%s\n", money(calc.NetSalary))

		if len(calc.Novelties) > 0 {
			b.WriteString("   Novedades:\n")
			for _, n := range calc.Novelties {
				fmt.Fprintf(&b, "     - %s: %s (%d días) - %s\n",
					n.Date.Format("2006-01-02"), n.Type, n.DiscountDays, orDefault(n.Description, "Sin descripción"))
			}
		}

		if monthAdvances := advancesByEmployee[calc.Employee.ID]; len(monthAdvances) > 0 {
			b.WriteString("   Anticipo Quincena del mes:\n")
			for _, a := range monthAdvances {
				fmt.Fprintf(&b, "     - %s: $%s - %s\n",
					a.Date.Format("2006-01-02"), money(a.Amount), orDefault(a.Description, "Sin descripción"))
			}
		}

		b.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")

		totalGross = totalGross.Add(calc.GrossSalary)
		totalDeductions = totalDeductions.Add(calc.Deductions.Total)
		totalNet = totalNet.Add(calc.NetSalary)
	}

	totalAdvances := decimal.Zero
	for _, a := range advances {
		if a.Month == run.Month {
			totalAdvances = totalAdvances.Add(a.Amount)
		}
	}

	b.WriteString("RESUMEN:\n")
	fmt.Fprintf(&b, "Total Salarios Brutos: $%s\n", money(totalGross))
	fmt.Fprintf(&b, "Total Deducciones: $%s\n", money(totalDeductions))
	fmt.Fprintf(&b, "Total Anticipo Quincena: $%s\n", money(totalAdvances))
	fmt.Fprintf(&b, "TOTAL NÓMINA NETA: $%s\n", money(totalNet))

	return b.String()
}

func writePositive(b *strings.Builder, label string, amount decimal.Decimal) {
	if amount.IsPositive() {
		fmt.Fprintf(b, "     - %s: $%s\n", label, money(amount))
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// money renders a grid-aligned amount with thousands separators, the
// way the sheets have always shown COP figures.
func money(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
