package channel

type Channel string

const InstallEventsChannel Channel = "installgate:events"
