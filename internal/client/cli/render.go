package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/jobwire/jobwire/internal/models"
	"github.com/jobwire/jobwire/pkg/api"
)

// Table renderers. Everything is rendered to a string and printed
// through the IO abstraction so command output stays testable.

func (c *Cli) renderUsers(title string, users []models.UserRecord) {
	if len(users) == 0 {
		c.io.Printf("%s: none\n", title)
		return
	}

	data := pterm.TableData{{"Name", "Email", "Role", "Premium", "Locked"}}
	for _, u := range users {
		data = append(data, []string{
			u.FullName(),
			u.Email,
			string(u.Role),
			yesNo(u.IsPremium),
			yesNo(u.IsLocked),
		})
	}

	c.io.Printf("%s (%d):\n", title, len(users))
	c.printTable(data)
}

func (c *Cli) renderJobs(title string, jobsList []api.Job) {
	if len(jobsList) == 0 {
		c.io.Printf("%s: none\n", title)
		return
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Salary", "Posted"}}
	for _, j := range jobsList {
		data = append(data, []string{
			j.ID,
			j.Title,
			j.CompanyName,
			salary(j.Salary),
			relativeTime(j.CreatedAt),
		})
	}

	c.io.Printf("%s (%d):\n", title, len(jobsList))
	c.printTable(data)
}

func (c *Cli) renderApplications(title string, apps []api.JobApplication) {
	if len(apps) == 0 {
		c.io.Printf("%s: none\n", title)
		return
	}

	data := pterm.TableData{{"ID", "Job", "Candidate", "Status", "Applied"}}
	for _, a := range apps {
		data = append(data, []string{
			a.ID,
			a.JobID,
			a.CandidateEmail,
			a.Status,
			relativeTime(a.AppliedAt),
		})
	}

	c.io.Printf("%s (%d):\n", title, len(apps))
	c.printTable(data)
}

func (c *Cli) renderPremiumRequests(requests []api.PremiumRequest) {
	if len(requests) == 0 {
		c.io.Println("Pending premium requests: none")
		return
	}

	data := pterm.TableData{{"ID", "User", "Email", "Requested"}}
	for _, r := range requests {
		data = append(data, []string{
			r.ID,
			r.UserName,
			r.UserEmail,
			relativeTime(r.RequestedAt),
		})
	}

	c.io.Printf("Pending premium requests (%d):\n", len(requests))
	c.printTable(data)
}

func (c *Cli) renderProfile(user models.UserRecord) {
	c.io.Printf("Name:     %s\n", user.FullName())
	c.io.Printf("Email:    %s\n", user.Email)
	c.io.Printf("Role:     %s\n", user.Role)
	if user.IsPremium {
		c.io.Println("Premium:  yes")
	}
	if user.IsLocked {
		c.io.Println("Locked:   yes")
	}
	if user.MobileNumber != "" {
		c.io.Printf("Phone:    %s %s\n", user.CountryCode, user.MobileNumber)
	}
	if user.CurrentCompany != "" {
		c.io.Printf("Company:  %s\n", user.CurrentCompany)
	}
	if user.Role == models.RoleCandidate {
		if user.ExperienceYears != "" {
			c.io.Printf("Experience: %s year(s)\n", user.ExperienceYears)
		}
		if user.Education != "" {
			c.io.Printf("Education:  %s\n", user.Education)
		}
		if user.Skills != "" {
			c.io.Printf("Skills:     %s\n", user.Skills)
		}
		if user.ResumeURL != "" {
			c.io.Printf("Resume:     %s\n", user.ResumeURL)
		}
	}
}

func (c *Cli) printTable(data pterm.TableData) {
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Table rendering is cosmetic; fall back to nothing rather
		// than failing the command.
		c.io.Printf("(failed to render table: %v)\n", err)
		return
	}
	c.io.Println(rendered)
}

func salary(amount float64) string {
	if amount <= 0 {
		return "-"
	}
	return "$" + humanize.Commaf(amount)
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
