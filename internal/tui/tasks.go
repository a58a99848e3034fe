package tui

import (
	"fmt"
	"strings"
)

func (a *App) tasksView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Tasks — %s", a.auth.Username)))
	b.WriteString("\n\n")

	if len(a.tasks) == 0 && !a.loading {
		b.WriteString("No tasks yet.\n")
	}

	for _, task := range a.tasks {
		b.WriteString(fmt.Sprintf("• %s  %s\n",
			task.CreatedAt.Format("2006-01-02 15:04"),
			task.Description,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r refresh • c copy token • s sign out • q quit"))
	return b.String()
}
