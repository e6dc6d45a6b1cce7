package render

import (
	"fmt"
	"github.com/olekukonko/tablewriter"
	"io"
	"scheduling-simulator/internal/responses"
)

func Table(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "ST", "CT", "WT", "TAT", "RT"})
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", response.AverageResponseTime)})
	table.Render()

	fmt.Fprintf(w, "\nAverage Waiting Time: %.2f\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", response.AverageTurnAroundTime)
	fmt.Fprintf(w, "Average Response Time: %.2f\n", response.AverageResponseTime)
	fmt.Fprintf(w, "CPU Utilization: %.2f%%  Throughput: %.2f/t\n",
		response.CpuUtilization*100, response.CpuThroughput)
}
